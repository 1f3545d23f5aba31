package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/gurume/internal/cli"
	"codeberg.org/snonux/gurume/internal/models"
	"codeberg.org/snonux/gurume/internal/processor"
)

func newRomajiCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "romaji [kana...]",
		Short: "Convert kana to Hepburn romaji",
		RunE: func(cmd *cobra.Command, args []string) error {
			return processor.NewProcessor(flags, processor.WithOutput(cmd.OutOrStdout())).Romanize(args)
		},
	}
}

func newTranslateCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate Japanese text to English",
		Long: `Translate Japanese text to English through the configured provider.

Latin-only text is printed unchanged. Results are cached for the session, so
repeated texts are only sent once. With --batch, lines of the form
"text = translation" seed the cache instead of being translated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags, processor.WithOutput(cmd.OutOrStdout()))
			defer proc.Close()
			return proc.Translate(cmd.Context(), args)
		},
	}
}

func newShopCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "shop [file|-]",
		Short: "Localize HotPepper shop records",
		Long: `Read HotPepper gourmet search results (or bare shop objects) as JSON and
print each shop with a romanized name and translated details. Reads stdin
when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			proc := processor.NewProcessor(flags,
				processor.WithOutput(cmd.OutOrStdout()),
				processor.WithInput(cmd.InOrStdin()),
			)
			defer proc.Close()
			return proc.LocalizeShops(cmd.Context(), path)
		},
	}
}

func newSessionCommand(flags *cli.Flags) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the translation session",
	}

	sessionCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Archive the session cache and start a new session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return processor.NewProcessor(flags, processor.WithOutput(cmd.OutOrStdout())).ResetSession()
		},
	})

	return sessionCmd
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI models usable for translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var baseURL string
			if viper.GetString("translate.provider") == "openai" {
				baseURL = viper.GetString("translate.endpoint")
			}
			lister := models.NewLister(cli.GetOpenAIKey(), baseURL)
			return lister.ListAvailableModels(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
