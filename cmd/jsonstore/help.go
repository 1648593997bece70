package jsonstore

import (
	"embed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/jsonstore/pkg/cobrax/topics"
)

//go:embed topics
var topicsFS embed.FS

// initTopics installs the topic-aware help command.
func initTopics(rootCmd *cobra.Command) {
	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(stdoutIsTerminal()),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
