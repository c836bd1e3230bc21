package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"

	"hotview/internal/service"
)

var (
	ratingFlag int
	logFlag    bool
)

// NewRootCmd creates the selection command. The images in the source
// hot folder whose rating reaches the threshold are copied into the
// destination folder.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hotview-select [source] [destination]",
		Short: "Copy selected images to a new folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, dest := args[0], args[1]

			logger := func(format string, v ...interface{}) {
				if logFlag {
					fmt.Fprintf(cmd.OutOrStdout(), format+"\n", v...)
				}
			}

			selector := service.NewSelector(logger)
			copied, err := selector.CopySelected(source, dest, ratingFlag)
			if err != nil {
				// A folder that was never rated is not a failure, just
				// nothing to do.
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					return nil
				}
				return err
			}
			if logFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "copied %d images to %s\n", copied, dest)
			}
			return nil
		},
	}

	rootCmd.Flags().IntVar(&ratingFlag, "rating", 0, "Minimum rating")
	rootCmd.Flags().BoolVar(&logFlag, "log", false, "Display selected files")
	return rootCmd
}

func main() {
	log.SetPrefix("hotview-select ")
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
