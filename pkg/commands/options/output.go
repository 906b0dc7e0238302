package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Format string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// AddFormatArg adds -o for commands that can print machine readable output.
func AddFormatArg(cmd *cobra.Command, po *OutputOptions, formats string) {
	AddOutputArg(cmd, po)
	cmd.Flags().StringVarP(&po.Format, "output", "o", "",
		fmt.Sprintf("Output format. One of %s.", formats))
}

// OutputFormat is the -o value, or json when only --json was given.
func (o *OutputOptions) OutputFormat() string {
	if o.Format == "" && o.JSON {
		return "json"
	}
	return o.Format
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
