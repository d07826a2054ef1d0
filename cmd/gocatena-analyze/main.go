package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arjunramendra/gocatena/pkg/gocatena"
)

var (
	rootCmd = &cobra.Command{
		Use:   "gocatena-analyze [hex]",
		Short: "Decode Catena sensor uplinks",
		Long:  "gocatena-analyze decodes Catena port-1 telemetry payloads using the gocatena library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx)
			}
			return runDecode(ctx, args[0])
		},
	}

	port int
)

func init() {
	rootCmd.PersistentFlags().IntVar(&port, "port", 1, "LoRaWAN port the payload was received on")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("gocatena analyze mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(ctx, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, hex string) error {
	result, err := gocatena.DecodeHex(ctx, hex, port)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
