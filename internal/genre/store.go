package genre

import (
	"encoding/json/v2"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/nextreadapp/nextread-server/internal/logger"
)

// Store holds the active taxonomy and supports hot reload from an optional
// JSON override file. Readers call Current and get a consistent snapshot;
// reloads swap the whole value.
type Store struct {
	current atomic.Pointer[Taxonomy]
	path    string
	log     *logger.Logger
	watcher *fsnotify.Watcher
}

// overrideFile is the on-disk shape of a taxonomy override. Every field is
// optional; present fields replace the built-in table wholesale (no
// per-entry merging, which keeps reload semantics predictable).
type overrideFile struct {
	Patterns []struct {
		Tag     string `json:"tag"`
		Pattern string `json:"pattern"`
	} `json:"patterns,omitempty"`
	Stopwords     []string                  `json:"stopwords,omitempty"`
	ListNames     map[string][]string       `json:"list_names,omitempty"`
	DefaultLists  []string                  `json:"default_lists,omitempty"`
	CrossMappings map[string][]string       `json:"cross_mappings,omitempty"`
	Curated       []CuratedEntry            `json:"curated,omitempty"`
	Fallbacks     map[string][]FallbackBook `json:"fallbacks,omitempty"`
}

// NewStore builds a store seeded with the built-in taxonomy. If path is
// non-empty the override file is loaded immediately and watched for changes.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	s := &Store{path: path, log: log}
	s.current.Store(Default())

	if path == "" {
		return s, nil
	}

	if err := s.reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating taxonomy watcher: %w", err)
	}
	// Watch the directory, not the file: editors replace files on save and
	// a file-level watch dies with the old inode.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching taxonomy dir: %w", err)
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Current returns the active taxonomy snapshot.
func (s *Store) Current() *Taxonomy {
	return s.current.Load()
}

// Close stops the file watcher if one is running.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Store) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.reload(); err != nil {
				// Keep serving the previous taxonomy on a bad edit.
				s.log.WithError(err).Warn("taxonomy reload failed, keeping previous")
				continue
			}
			s.log.WithField("path", s.path).Info("taxonomy reloaded")
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.WithError(err).Warn("taxonomy watcher error")
		}
	}
}

func (s *Store) reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening taxonomy override: %w", err)
	}
	defer f.Close()

	var override overrideFile
	if err := json.UnmarshalRead(f, &override); err != nil {
		return fmt.Errorf("parsing taxonomy override: %w", err)
	}

	next, err := applyOverride(Default(), override)
	if err != nil {
		return err
	}
	s.current.Store(next)
	return nil
}

func applyOverride(base *Taxonomy, o overrideFile) (*Taxonomy, error) {
	if len(o.Patterns) > 0 {
		patterns := make([]Pattern, 0, len(o.Patterns))
		for _, p := range o.Patterns {
			re, err := regexp.Compile(p.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for tag %q: %w", p.Tag, err)
			}
			patterns = append(patterns, Pattern{Tag: p.Tag, Pattern: re})
		}
		base.Patterns = patterns
	}
	if len(o.Stopwords) > 0 {
		set := make(map[string]bool, len(o.Stopwords))
		for _, w := range o.Stopwords {
			set[w] = true
		}
		base.Stopwords = set
	}
	if len(o.ListNames) > 0 {
		base.ListNames = o.ListNames
	}
	if len(o.DefaultLists) > 0 {
		base.DefaultLists = o.DefaultLists
	}
	if len(o.CrossMappings) > 0 {
		base.CrossMappings = o.CrossMappings
	}
	if len(o.Curated) > 0 {
		base.Curated = o.Curated
	}
	if len(o.Fallbacks) > 0 {
		base.Fallbacks = o.Fallbacks
	}
	return base, nil
}
