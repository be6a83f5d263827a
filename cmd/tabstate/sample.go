package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/tabstate"
	"pkt.systems/tabstate/internal/wire"
	"pkt.systems/tabstate/schema"
)

type sampleOptions struct {
	Saved    bool
	Path     string
	Content  string
	Appended string
	Seq      uint64
}

func newSampleCmd() *cobra.Command {
	var opts sampleOptions
	cmd := &cobra.Command{
		Use:   "sample <output-file>",
		Short: "Write a synthetic tab state file",
		Long: "Write a synthetic tab state file for testing parsers. The buffer holds\n" +
			"--content, and --append is recorded as unsaved typing after it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := buildSample(opts, time.Now())
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := tabstate.Encode(&buf, rec); err != nil {
				return err
			}
			if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", args[0], buf.Len())
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.Saved, "saved", false, "use the saved-file layout")
	cmd.Flags().StringVar(&opts.Path, "path", `C:\Users\user\Documents\notes.txt`, "backing file path for --saved")
	cmd.Flags().StringVar(&opts.Content, "content", "Hello", "buffer content")
	cmd.Flags().StringVar(&opts.Appended, "append", "", "text recorded as unsaved edit chunks")
	cmd.Flags().Uint64Var(&opts.Seq, "seq", 1, "sequence number")
	return cmd
}

// buildSample assembles a record whose edit chunks type opts.Appended one
// unit at a time after the saved content.
func buildSample(opts sampleOptions, now time.Time) (*schema.TabState, error) {
	contentUnits, err := utf16Units(opts.Content)
	if err != nil {
		return nil, err
	}
	rec := &schema.TabState{
		Signature:      schema.Signature,
		SequenceNumber: opts.Seq,
		IsSavedFile:    opts.Saved,
		CursorStart:    contentUnits,
		CursorEnd:      contentUnits,
		ConfigBlock:    schema.ConfigBlock{WordWrap: true, Version: 1},
		ContentLength:  contentUnits,
		Content:        opts.Content,
		Checksum:       "00000000",
	}
	if opts.Saved {
		if opts.Path == "" {
			return nil, fmt.Errorf("--path is required with --saved")
		}
		pathUnits, err := utf16Units(opts.Path)
		if err != nil {
			return nil, err
		}
		rec.PathLength = pathUnits
		rec.SavedFile = &schema.SavedFile{
			Path:          opts.Path,
			FileSize:      contentUnits,
			Encoding:      schema.EncodingUTF8,
			LineEnding:    schema.LineEndingCRLF,
			LastWriteTime: schema.FileTimeFromTime(now),
			FileHash:      fmt.Sprintf("%064X", 0),
		}
	}
	pos := contentUnits
	for _, r := range opts.Appended {
		text := string(r)
		units, err := utf16Units(text)
		if err != nil {
			return nil, err
		}
		rec.EditChunks = append(rec.EditChunks, schema.EditChunk{
			Position:      pos,
			AdditionCount: units,
			InsertedText:  &text,
			Checksum:      "00000000",
		})
		pos += units
	}
	if len(rec.EditChunks) > 0 {
		rec.HasUnsavedChanges = true
	}
	return rec, nil
}

func utf16Units(s string) (uint64, error) {
	_, units, err := wire.EncodeUTF16LE(s)
	return units, err
}
