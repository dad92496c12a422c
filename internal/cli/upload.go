package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app_errors "legalbot/internal/errors"
	"legalbot/internal/session"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a PDF document for indexing",
	Long: `Upload a PDF document so the assistant can answer questions about it.

The file is validated locally (PDF only, at most 1MB) before any network
call is made. On success the server reports how many chunks the document was
split into during indexing.

Examples:
  legalbot upload contract.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := cmd.Context()

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)

	// Same admission policy as the chat attachment flow; a rejected file
	// never reaches the network.
	policy := session.DefaultPolicy()
	candidate := session.FileCandidate{Name: name, Path: path, Size: info.Size()}
	if msg, err := policy.Check(candidate); err != nil {
		fmt.Println(msg)
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	resp, err := client.UploadFile(ctx, name, src)
	if err != nil {
		if errors.Is(err, app_errors.ErrPayloadTooLarge) {
			// Server-confirmed oversize; its detail message says by how much.
			fmt.Println(err.Error())
			return err
		}
		return err
	}

	fmt.Printf("Successfully uploaded and indexed %q with %d chunks. You can now ask questions about this document!\n",
		resp.Filename, resp.ChunksCount)
	return nil
}
