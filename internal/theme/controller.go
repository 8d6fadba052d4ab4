// Package theme applies generated palettes to a live surface and remembers
// the last one across restarts.
//
// Integration example:
//
//	st, err := storage.NewStorage(cfg.Paths.Database)
//	if err != nil {
//		return err
//	}
//	ctrl := theme.New(ctx, surface.NewFile(cfg.Surface.Path), st.Settings)
//	defer ctrl.Close()
//
//	if err := ctrl.SetTheme(ctx, palette.Palette{palette.Primary: "#ff0000"}); err != nil {
//		return err // *color.InvalidColorError; nothing was applied
//	}
package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/Justice-Caban/Irodori/internal/logging"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/variables"
	"github.com/rs/zerolog"
)

// StoreKey is the key the rendered theme block is persisted under
const StoreKey = "theme"

// SurfaceApplier is the live rendering surface
type SurfaceApplier interface {
	// ApplyBlock replaces every managed property with the declarations in block
	ApplyBlock(block string) error
	// SetProperty sets one property in isolation
	SetProperty(name, value string) error
}

// ThemeStore is the durable key/value slot the rendered block lives in
type ThemeStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Controller drives resolution, generation, application and persistence
type Controller struct {
	surface SurfaceApplier
	store   ThemeStore
	prefix  string
	logger  zerolog.Logger

	// applied is set once SetTheme reaches the surface; a restore that
	// resolves afterwards is stale and dropped
	mu      sync.Mutex
	applied bool
	seq     uint64 // incremented per applied theme

	// persistMu serializes store writes; written is the newest seq already
	// sent to the store, so a write that starts late for an older theme is
	// skipped
	persistMu sync.Mutex
	written   uint64

	ready    chan struct{}
	persists sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithPrefix sets the variable name prefix used when rendering
func WithPrefix(prefix string) Option {
	return func(c *Controller) {
		c.prefix = prefix
	}
}

// WithLogger overrides the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller and starts restoring the last persisted theme in
// the background. Until that finishes the surface keeps whatever styling the
// host had.
func New(ctx context.Context, surface SurfaceApplier, store ThemeStore, opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		store:   store,
		prefix:  variables.DefaultPrefix,
		logger:  logging.Component("theme"),
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.restore(ctx)
	return c
}

// Ready is closed once the startup restore has finished
func (c *Controller) Ready() <-chan struct{} {
	return c.ready
}

// SetTheme resolves p over the defaults, generates the variable set, applies
// it to the surface and persists the rendered block in the background. A
// color parse failure is returned before anything is applied or persisted.
// Persistence failures are logged, never returned.
func (c *Controller) SetTheme(ctx context.Context, p palette.Palette) error {
	set, err := variables.Generate(palette.Resolve(p))
	if err != nil {
		return err
	}
	block := variables.Render(set, c.prefix)

	c.mu.Lock()
	err = c.surface.ApplyBlock(block)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("failed to apply theme: %w", err)
	}
	c.applied = true
	c.seq++
	seq := c.seq
	// registered under mu so Close never misses a write for an applied theme
	c.persists.Add(1)
	c.mu.Unlock()

	c.logger.Debug().Int("variables", len(set)).Uint64("seq", seq).Msg("theme applied")

	go func() {
		defer c.persists.Done()
		c.persist(context.WithoutCancel(ctx), seq, block)
	}()

	return nil
}

// persist writes block unless a newer theme has already been written
func (c *Controller) persist(ctx context.Context, seq uint64, block string) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	if seq <= c.written {
		c.logger.Debug().Uint64("seq", seq).Msg("theme superseded before persisting")
		return
	}
	c.written = seq

	if err := c.store.Set(ctx, StoreKey, block); err != nil {
		c.logger.Warn().Err(err).Uint64("seq", seq).Msg("failed to persist theme")
		return
	}
	c.logger.Debug().Uint64("seq", seq).Msg("theme persisted")
}

// SetVariable applies a single property override to the surface without
// touching the persisted theme. Names without a leading "--" get the
// controller's prefix.
func (c *Controller) SetVariable(name, value string) error {
	if err := c.surface.SetProperty(variables.PropertyName(c.prefix, name), value); err != nil {
		return fmt.Errorf("failed to set variable %s: %w", name, err)
	}
	return nil
}

// CurrentStoredTheme returns the last persisted block. A failed read is
// reported as no stored theme.
func (c *Controller) CurrentStoredTheme(ctx context.Context) (string, bool) {
	block, ok, err := c.store.Get(ctx, StoreKey)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to read stored theme")
		return "", false
	}
	if !ok || block == "" {
		return "", false
	}
	return block, true
}

// Close waits for the startup restore and any in-flight persistence writes
func (c *Controller) Close() {
	<-c.ready
	c.persists.Wait()
}

func (c *Controller) restore(ctx context.Context) {
	defer close(c.ready)

	block, ok := c.CurrentStoredTheme(ctx)
	if !ok {
		c.logger.Debug().Msg("no stored theme")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.applied {
		c.logger.Debug().Msg("stored theme superseded before restore finished")
		return
	}
	if err := c.surface.ApplyBlock(block); err != nil {
		c.logger.Warn().Err(err).Msg("failed to restore stored theme")
		return
	}
	c.logger.Debug().Msg("stored theme restored")
}
