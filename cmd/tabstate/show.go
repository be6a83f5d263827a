package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"pkt.systems/tabstate"
	"pkt.systems/tabstate/schema"
)

type showOptions struct {
	Field   string
	Compact bool
	Color   string
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func newShowCmd() *cobra.Command {
	var opts showOptions
	cmd := &cobra.Command{
		Use:   "show <file|->",
		Short: "Print one tab state file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := loadRecord(cmd, args[0])
			if err != nil {
				return err
			}
			return writeShow(cmd.OutOrStdout(), rec, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Field, "field", "", "print only the value at this JSON path (gjson syntax)")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "print compact JSON")
	cmd.Flags().StringVar(&opts.Color, "color", colorAuto, "colorize output (auto|always|never)")
	return cmd
}

func loadRecord(cmd *cobra.Command, source string) (*schema.TabState, error) {
	if source != "-" {
		return tabstate.DecodeFile(cmd.Context(), source)
	}
	rec, err := tabstate.Decode(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("parse stdin: %w", err)
	}
	tabstate.AttachTranscript(rec)
	return rec, nil
}

func writeShow(w io.Writer, rec *schema.TabState, opts showOptions) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if opts.Field != "" {
		result := gjson.GetBytes(data, opts.Field)
		if !result.Exists() {
			return fmt.Errorf("field %q not present", opts.Field)
		}
		if result.Type != gjson.JSON {
			_, err := fmt.Fprintln(w, result.String())
			return err
		}
		data = []byte(result.Raw)
	}
	if opts.Compact {
		data = pretty.Ugly(data)
	} else {
		data = pretty.Pretty(data)
	}
	color, err := useColor(w, opts.Color)
	if err != nil {
		return err
	}
	if color {
		data = pretty.Color(data, nil)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

func useColor(w io.Writer, mode string) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q", mode)
	}
}
