package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/letsssgooo/botapi/internal/botapi"
)

func newDecodeCmd(_ *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a JSON payload as a Bot API entity and print it re-encoded",
		Long: `Decode reads a JSON payload from a file (or stdin when the argument is "-" or
omitted), decodes it as the entity named by --kind and prints the canonical
encoding. Decode errors carry the path of the offending field.

Known kinds: ` + strings.Join(botapi.Kinds(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			entity, err := botapi.Decode(kind, data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", kind, err)
			}

			return printJSON(cmd.OutOrStdout(), entity)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "update", "entity kind")

	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}

	return data, nil
}
