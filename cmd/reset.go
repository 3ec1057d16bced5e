package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the phase history database",
	Long: `Delete the history database, removing all recorded phases.

The configuration file is left untouched. This cannot be undone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Printf("This deletes all phase history at %s.\n", dbPath)
			fmt.Print("Type 'yes' to continue: ")

			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		// Close the handle before removing the file underneath it.
		if storageAdapter != nil {
			storageAdapter.Close()
			storageAdapter = nil
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No history database found; nothing to do.")
				return nil
			}
			return fmt.Errorf("failed to delete history database: %w", err)
		}

		// WAL sidecar files, if any.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("Phase history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
