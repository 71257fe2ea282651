package cmd

import (
	"fmt"
	"strings"

	"github.com/mwantia/vls/list"
)

// UsageError reports an unrecognized command-line flag. It terminates
// the invocation before any listing occurs.
type UsageError struct {
	Flag string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid option -- '%s'", e.Flag)
}

// Usage returns the help summary printed alongside a UsageError.
func Usage() string {
	return strings.Join([]string{
		"Usage: vls [OPTION]... [PATH]...",
		"List information about the PATHs (the current directory by default).",
		"",
		"  -a, --all      do not ignore entries starting with .",
		"  -l, --long     use a long listing format",
		"  -r, --reverse  reverse order while sorting",
	}, "\n")
}

// Parse validates raw arguments into the immutable options record and
// the positional paths. Flags and paths may be interleaved; "--" ends
// flag parsing. Combined short flags ("-alr") are supported.
func Parse(raw []string) (list.Options, []string, error) {
	var opts list.Options
	var paths []string

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if arg == "--" {
			paths = append(paths, raw[i+1:]...)
			break
		}

		if strings.HasPrefix(arg, "--") {
			switch arg[2:] {
			case "all":
				opts.ShowHidden = true
			case "reverse":
				opts.Reverse = true
			case "long":
				opts.Long = true
			default:
				return list.Options{}, nil, &UsageError{Flag: arg[2:]}
			}
			continue
		}

		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			for _, short := range arg[1:] {
				switch short {
				case 'a':
					opts.ShowHidden = true
				case 'r':
					opts.Reverse = true
				case 'l':
					opts.Long = true
				default:
					return list.Options{}, nil, &UsageError{Flag: string(short)}
				}
			}
			continue
		}

		paths = append(paths, arg)
	}

	return opts, paths, nil
}
