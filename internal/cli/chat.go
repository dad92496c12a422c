package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	app_errors "legalbot/internal/errors"
	"legalbot/internal/model"
	"legalbot/internal/preview"
	"legalbot/internal/session"
)

const signInPrompt = "Please sign in to use the chat feature"

const greeting = `Legalbot — AI-Powered Legal Intelligence

Ask a legal question, or try one of these:
  - I need legal consultation for my business
  - Analyze this contract for potential issues
  - Check my business for regulatory compliance

Commands: /attach <file>  /detach  /new  /stats  /history  /quit`

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the legal assistant.

Type a message and press enter to send it. Attach a PDF with /attach before
sending to have it uploaded and indexed alongside your message.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sess := session.New(session.Options{
		Client:   client,
		Auth:     tokenAuthorizer{token: cfg.AuthToken},
		Previews: preview.NewManager(cfg.PreviewDir),
		History:  histRepo,
		Logger:   logger,
	})
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Warn("session teardown failed", "error", err)
		}
	}()

	if sess.ShowGreeting() {
		fmt.Println(greeting)
	}

	scanner := bufio.NewScanner(os.Stdin)
	rendered := 0
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "/") {
			if quit := runSlashCommand(ctx, sess, line, &rendered); quit {
				break
			}
			continue
		}

		sess.SetInput(line)
		if err := sess.Submit(ctx); err != nil {
			if errors.Is(err, app_errors.ErrAuthRequired) {
				fmt.Println(signInPrompt)
				continue
			}
			return err
		}
		rendered = renderTranscript(sess, rendered)
	}
	return scanner.Err()
}

// runSlashCommand handles the in-session commands. Returns true to quit.
func runSlashCommand(ctx context.Context, sess *session.Controller, line string, rendered *int) bool {
	cmdName, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmdName {
	case "/quit", "/exit":
		return true

	case "/attach":
		if arg == "" {
			fmt.Println("usage: /attach <file>")
			return false
		}
		if err := attachFile(sess, arg); err != nil {
			if errors.Is(err, app_errors.ErrValidation) {
				fmt.Println(sess.FileError())
			} else {
				fmt.Printf("Could not attach %s: %v\n", arg, err)
			}
			return false
		}
		f := sess.Selected()
		fmt.Printf("Attached %s (%d bytes). It will be uploaded with your next message.\n", f.Name, f.Size)

	case "/detach":
		sess.RemoveFile()
		fmt.Println("Attachment removed.")

	case "/new":
		if err := sess.NewChat(); err != nil {
			fmt.Println("Cannot start a new chat right now.")
			return false
		}
		*rendered = 0
		fmt.Println(greeting)

	case "/stats":
		stats, err := client.Stats(ctx)
		if err != nil {
			fmt.Println("Could not fetch document stats.")
			return false
		}
		fmt.Printf("Documents: %d (collection %s)\n", stats.DocumentCount, stats.CollectionName)

	case "/history":
		for _, entry := range sess.HistoryEntries() {
			fmt.Printf("%s  %s\n", entry.Date.Format("2006-01-02"), entry.Title)
		}

	default:
		fmt.Printf("Unknown command %q\n", cmdName)
	}
	return false
}

// attachFile builds a candidate from a local path and hands it to the
// session's admission policy.
func attachFile(sess *session.Controller, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	mediaType := mime.TypeByExtension(filepath.Ext(name))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return sess.Attach(session.FileCandidate{
		Name:      name,
		Path:      path,
		Size:      info.Size(),
		MediaType: mediaType,
	})
}

// renderTranscript prints messages appended since the last render and
// returns the new high-water mark.
func renderTranscript(sess *session.Controller, from int) int {
	transcript := sess.Transcript()
	for _, msg := range transcript[from:] {
		switch msg.Sender {
		case model.SenderUser:
			// The user already typed this line; skip echoing it.
		default:
			fmt.Printf("assistant: %s\n", msg.Text)
		}
	}
	return len(transcript)
}
