package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2"
	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"
)

var errTagAbsent = errors.New("tag not present")

func getCommand(a *app) *cobra.Command {
	var interpreted bool
	cmd := &cobra.Command{
		Use:   "get FILE TAG...",
		Short: "Print the values of the given tags",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := gexiv2.Open(args[0], a.options()...)
			if err != nil {
				return err
			}
			defer md.Close()

			d := fileDump{Path: md.Path()}
			var missing []string
			for _, key := range args[1:] {
				ok, err := md.HasTag(key)
				if err != nil {
					return err
				}
				if !ok {
					missing = append(missing, key)
					continue
				}
				e, err := entry(md, key, interpreted, false)
				if err != nil {
					return err
				}
				if err := d.add(e); err != nil {
					return err
				}
			}
			if err := render(cmd.OutOrStdout(), a.cfg.Output, []fileDump{d}); err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", errTagAbsent, strings.Join(missing, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interpreted, "interpreted", "i", false, "Print human-readable values")
	return cmd
}

// assignment is one TAG=VALUE argument of set. Repeating a multi-valued tag
// appends to its values.
type assignment struct {
	tag    string
	values []string
}

func parseAssignments(args []string) ([]assignment, error) {
	var out []assignment
	index := map[string]int{}
	for _, arg := range args {
		tag, value, ok := strings.Cut(arg, "=")
		if !ok || tag == "" {
			return nil, fmt.Errorf("%q is not of the form TAG=VALUE", arg)
		}
		if _, err := gexiv2.ParseTag(tag); err != nil {
			return nil, err
		}
		if i, seen := index[tag]; seen {
			out[i].values = append(out[i].values, value)
			continue
		}
		index[tag] = len(out)
		out = append(out, assignment{tag: tag, values: []string{value}})
	}
	return out, nil
}

func setCommand(a *app) *cobra.Command {
	var sidecar string
	cmd := &cobra.Command{
		Use:   "set FILE TAG=VALUE...",
		Short: "Set tags and save the image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			return edit(cmd.Context(), a, args[0], sidecar, func(md *gexiv2.Metadata) error {
				for _, as := range assignments {
					if err := apply(md, as); err != nil {
						return err
					}
					a.log.Debug(cmd.Context(), "tag written", "path", args[0], "tag", as.tag, logging.Redacted("value"))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sidecar, "sidecar", "", "Write an XMP sidecar to this path instead of modifying FILE")
	return cmd
}

func apply(md *gexiv2.Metadata, as assignment) error {
	multi, err := md.TagSupportsMultipleValues(as.tag)
	if err != nil {
		return err
	}
	if multi {
		return md.SetTagStrings(as.tag, as.values)
	}
	if len(as.values) > 1 {
		return fmt.Errorf("%s holds a single value but was given %d", as.tag, len(as.values))
	}
	return md.SetTagString(as.tag, as.values[0])
}

func clearCommand(a *app) *cobra.Command {
	var family, sidecar string
	cmd := &cobra.Command{
		Use:   "clear FILE [TAG...]",
		Short: "Remove tags, a whole family, or everything, and save the image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := args[1:]
			if family != "" && len(tags) > 0 {
				return errors.New("--family cannot be combined with tag names")
			}
			return edit(cmd.Context(), a, args[0], sidecar, func(md *gexiv2.Metadata) error {
				switch {
				case len(tags) > 0:
					for _, tag := range tags {
						removed, err := md.ClearTag(tag)
						if err != nil {
							return err
						}
						if !removed {
							a.log.Info(cmd.Context(), "tag not present", "path", args[0], "tag", tag)
						}
					}
					return nil
				case family != "":
					return clearFamily(md, family)
				default:
					return md.Clear()
				}
			})
		},
	}
	cmd.Flags().StringVarP(&family, "family", "f", "", "Clear one family: exif, xmp or iptc")
	cmd.Flags().StringVar(&sidecar, "sidecar", "", "Write an XMP sidecar to this path instead of modifying FILE")
	return cmd
}

func clearFamily(md *gexiv2.Metadata, family string) error {
	switch strings.ToLower(family) {
	case "exif":
		return md.ClearExif()
	case "xmp":
		return md.ClearXmp()
	case "iptc":
		return md.ClearIptc()
	}
	return fmt.Errorf("unknown family %q", family)
}

// edit opens path, applies fn and saves the result either back to path or to
// an XMP sidecar.
func edit(ctx context.Context, a *app, path, sidecar string, fn func(*gexiv2.Metadata) error) error {
	md, err := gexiv2.Open(path, a.options()...)
	if err != nil {
		return err
	}
	defer md.Close()

	if err := fn(md); err != nil {
		return err
	}
	if sidecar != "" {
		if err := md.SaveSidecar(sidecar); err != nil {
			return err
		}
		a.log.Info(ctx, "sidecar written", "path", sidecar)
		return nil
	}
	if err := md.Save(path); err != nil {
		return err
	}
	a.log.Info(ctx, "metadata saved", "path", path)
	return nil
}
