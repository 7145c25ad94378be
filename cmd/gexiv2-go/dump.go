package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2"
)

// fileDump is the printable metadata of one image.
type fileDump struct {
	Path      string     `yaml:"path"`
	MediaType string     `yaml:"media_type,omitempty"`
	Width     int        `yaml:"width,omitempty"`
	Height    int        `yaml:"height,omitempty"`
	Exif      []tagEntry `yaml:"exif,omitempty"`
	Xmp       []tagEntry `yaml:"xmp,omitempty"`
	Iptc      []tagEntry `yaml:"iptc,omitempty"`
}

type tagEntry struct {
	Key    string   `yaml:"key"`
	Type   string   `yaml:"type"`
	Label  string   `yaml:"label,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

// add files e under its family.
func (d *fileDump) add(e tagEntry) error {
	tag, err := gexiv2.ParseTag(e.Key)
	if err != nil {
		return err
	}
	switch tag.Family {
	case gexiv2.Exif:
		d.Exif = append(d.Exif, e)
	case gexiv2.Xmp:
		d.Xmp = append(d.Xmp, e)
	case gexiv2.Iptc:
		d.Iptc = append(d.Iptc, e)
	}
	return nil
}

func dumpCommand(a *app) *cobra.Command {
	var interpreted, labels bool
	cmd := &cobra.Command{
		Use:   "dump FILE...",
		Short: "Print every tag of one or more images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mds, err := gexiv2.OpenMany(cmd.Context(), args, a.options()...)
			if err != nil {
				return err
			}
			defer func() {
				for _, md := range mds {
					_ = md.Close()
				}
			}()

			dumps := make([]fileDump, 0, len(mds))
			for _, md := range mds {
				d, err := collect(md, interpreted, labels)
				if err != nil {
					return err
				}
				dumps = append(dumps, d)
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, dumps)
		},
	}
	cmd.Flags().BoolVarP(&interpreted, "interpreted", "i", false, "Print human-readable values")
	cmd.Flags().BoolVarP(&labels, "labels", "l", false, "Include tag labels")
	return cmd
}

func collect(md *gexiv2.Metadata, interpreted, labels bool) (fileDump, error) {
	d := fileDump{Path: md.Path()}
	var err error
	if d.MediaType, _, err = md.MediaType(); err != nil {
		return d, err
	}
	if d.Width, err = md.PixelWidth(); err != nil {
		return d, err
	}
	if d.Height, err = md.PixelHeight(); err != nil {
		return d, err
	}

	for _, fam := range []struct {
		list func() ([]string, error)
		dst  *[]tagEntry
	}{
		{md.ExifTags, &d.Exif},
		{md.XmpTags, &d.Xmp},
		{md.IptcTags, &d.Iptc},
	} {
		keys, err := fam.list()
		if err != nil {
			return d, err
		}
		for _, key := range keys {
			e, err := entry(md, key, interpreted, labels)
			if err != nil {
				return d, err
			}
			*fam.dst = append(*fam.dst, e)
		}
	}
	return d, nil
}

func entry(md *gexiv2.Metadata, key string, interpreted, labels bool) (tagEntry, error) {
	e := tagEntry{Key: key}
	t, err := gexiv2.TagTypeOf(key)
	if err != nil {
		return e, err
	}
	e.Type = t.String()
	if labels {
		if e.Label, err = gexiv2.TagLabel(key); err != nil {
			return e, err
		}
	}

	multi, err := md.TagSupportsMultipleValues(key)
	if err != nil {
		return e, err
	}
	if multi {
		e.Values, err = md.TagStrings(key)
		return e, err
	}
	if interpreted {
		e.Value, _, err = md.TagInterpretedString(key)
	} else {
		e.Value, _, err = md.TagString(key)
	}
	return e, err
}

func render(w io.Writer, format string, dumps []fileDump) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dumps); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	for i, d := range dumps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s", d.Path)
		if d.MediaType != "" {
			fmt.Fprintf(w, " (%s, %dx%d)", d.MediaType, d.Width, d.Height)
		}
		fmt.Fprintln(w)
		for _, group := range [][]tagEntry{d.Exif, d.Xmp, d.Iptc} {
			for _, e := range group {
				writeEntry(w, e)
			}
		}
	}
	return nil
}

func writeEntry(w io.Writer, e tagEntry) {
	fmt.Fprintf(w, "  %-44s %-10s", e.Key, e.Type)
	if e.Label != "" {
		fmt.Fprintf(w, " [%s]", e.Label)
	}
	if e.Values != nil {
		for _, v := range e.Values {
			fmt.Fprintf(w, "\n  %-44s %-10s %s", "", "", v)
		}
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, " %s\n", e.Value)
}
