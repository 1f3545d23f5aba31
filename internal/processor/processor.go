package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"codeberg.org/snonux/gurume/internal/archive"
	"codeberg.org/snonux/gurume/internal/batch"
	"codeberg.org/snonux/gurume/internal/cli"
	"codeberg.org/snonux/gurume/internal/localize"
	"codeberg.org/snonux/gurume/internal/romaji"
	"codeberg.org/snonux/gurume/internal/store"
	"codeberg.org/snonux/gurume/internal/translation"
)

// Processor handles the command logic
type Processor struct {
	flags *cli.Flags
	out   io.Writer
	in    io.Reader

	backend    translation.Backend
	store      store.Store
	ownsStore  bool
	translator *translation.Translator
}

// Option configures a Processor.
type Option func(*Processor)

// WithOutput sets where results are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Processor) { p.out = w }
}

// WithInput sets where "-" reads shop records from. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(p *Processor) { p.in = r }
}

// WithBackend uses backend instead of the configured provider.
func WithBackend(backend translation.Backend) Option {
	return func(p *Processor) { p.backend = backend }
}

// WithStore uses s as the session store instead of opening the configured
// one. The caller keeps ownership of s.
func WithStore(s store.Store) Option {
	return func(p *Processor) { p.store = s }
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, opts ...Option) *Processor {
	p := &Processor{
		flags: flags,
		out:   os.Stdout,
		in:    os.Stdin,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Close releases the session store if the processor opened it.
func (p *Processor) Close() error {
	if p.store == nil || !p.ownsStore {
		return nil
	}
	err := p.store.Close()
	p.store = nil
	p.translator = nil
	return err
}

// Romanize prints the romaji for each text, taken from args or the batch
// file.
func (p *Processor) Romanize(args []string) error {
	texts, err := p.inputTexts(args)
	if err != nil {
		return err
	}

	for i, r := range romaji.RomanizeAll(texts) {
		fmt.Fprintf(p.out, "%s\t%s\n", texts[i], r)
	}
	return nil
}

// Translate translates each text from args or the batch file and prints
// "source = translation" lines. Batch entries that already carry a
// translation seed the session cache instead of reaching the backend.
func (p *Processor) Translate(ctx context.Context, args []string) error {
	entries, err := p.inputEntries(args)
	if err != nil {
		return err
	}

	tr, err := p.getTranslator(ctx)
	if err != nil {
		return err
	}

	seeded := 0
	for _, e := range entries {
		if e.Translation == "" {
			continue
		}
		if err := tr.Cache().Put(ctx, e.Text, e.Translation); err != nil {
			log.Warn().Err(err).Str("text", e.Text).Msg("Failed to persist provided translation")
		}
		seeded++
	}

	result := tr.TranslateBatch(ctx, batch.Texts(entries))
	for _, e := range entries {
		fmt.Fprintf(p.out, "%s = %s\n", e.Text, result[e.Text])
	}

	log.Info().
		Int("entries", len(entries)).
		Int("seeded", seeded).
		Int("cached", tr.Cache().Len()).
		Msg("Translation finished")
	return nil
}

// LocalizeShops reads shop records from path ("-" for stdin) and prints a
// localized card for each.
func (p *Processor) LocalizeShops(ctx context.Context, path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(p.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read shop records: %w", err)
	}

	shops, err := localize.DecodeShops(data)
	if err != nil {
		return err
	}

	tr, err := p.getTranslator(ctx)
	if err != nil {
		return err
	}
	localizer := localize.NewLocalizer(tr)

	for i, shop := range shops {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		p.printCard(localizer.Localize(ctx, shop))
	}
	return nil
}

// ResetSession ends the current translation session by archiving the
// session store, so the next run starts with an empty cache.
func (p *Processor) ResetSession() error {
	kind := viper.GetString("cache.store")
	if kind != "sqlite" && kind != "file" {
		fmt.Fprintln(p.out, "Session cache is kept in memory, nothing to reset")
		return nil
	}

	if err := p.Close(); err != nil {
		return fmt.Errorf("failed to close session store: %w", err)
	}

	archived, err := archive.ArchiveSession(viper.GetString("cache.path"))
	if errors.Is(err, archive.ErrNoSession) {
		fmt.Fprintln(p.out, "No session to reset")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Session archived to %s\n", archived)
	return nil
}

// getTranslator builds the translator on first use.
func (p *Processor) getTranslator(ctx context.Context) (*translation.Translator, error) {
	if p.translator != nil {
		return p.translator, nil
	}

	if p.backend == nil {
		backend, err := translation.NewBackend(ctx, cli.TranslationConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create translation backend: %w", err)
		}
		p.backend = backend
	}

	if p.store == nil {
		s, err := store.Open(viper.GetString("cache.store"), viper.GetString("cache.path"))
		if err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		p.store = s
		p.ownsStore = true
	}

	p.translator = translation.NewTranslator(
		p.backend,
		translation.NewCache(p.store),
		translation.WithConcurrency(p.concurrency()),
	)
	log.Debug().Str("backend", p.backend.Name()).Msg("Translator ready")
	return p.translator, nil
}

func (p *Processor) concurrency() int {
	if viper.IsSet("translate.concurrency") {
		return viper.GetInt("translate.concurrency")
	}
	if p.flags != nil {
		return p.flags.Concurrency
	}
	return 0
}

func (p *Processor) inputEntries(args []string) ([]batch.Entry, error) {
	if p.flags != nil && p.flags.BatchFile != "" {
		return batch.ReadBatchFile(p.flags.BatchFile)
	}
	if len(args) == 0 {
		return nil, errors.New("no input: pass texts as arguments or use --batch")
	}

	entries := make([]batch.Entry, len(args))
	for i, a := range args {
		entries[i] = batch.Entry{Text: a}
	}
	return entries, nil
}

func (p *Processor) inputTexts(args []string) ([]string, error) {
	entries, err := p.inputEntries(args)
	if err != nil {
		return nil, err
	}
	return batch.Texts(entries), nil
}

func (p *Processor) printCard(card localize.Card) {
	title := card.Name
	if card.Romaji != "" {
		title = fmt.Sprintf("%s (%s)", card.Romaji, card.Name)
	}
	fmt.Fprintln(p.out, title)

	line := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(p.out, "  %-10s %s\n", label+":", value)
		}
	}
	line("Genre", card.Genre.Translated)
	line("Style", card.GenreCatch.Translated)

	budget := card.Budget
	if card.BudgetAverage != "" && card.BudgetAverage != card.Budget {
		budget = fmt.Sprintf("%s (average %s)", card.Budget, card.BudgetAverage)
	}
	line("Budget", strings.TrimSpace(budget))
	line("Station", card.Station)
	line("Catch", card.Catch.Translated)
	line("Address", card.Address.Translated)
	line("Access", card.Access.Translated)
	line("Open", card.Open.Translated)
	line("Closed", card.Close.Translated)
	if card.Capacity > 0 {
		line("Capacity", fmt.Sprintf("%d", card.Capacity))
	}
	if card.PartyCapacity > 0 {
		line("Party", fmt.Sprintf("%d", card.PartyCapacity))
	}
	line("Notes", card.OtherMemo.Translated)

	if len(card.Amenities) > 0 {
		fmt.Fprintln(p.out, "  Amenities:")
		for _, a := range card.Amenities {
			fmt.Fprintf(p.out, "    %-24s %s\n", a.Label+":", a.Value)
		}
	}
	line("URL", card.URL)
}
