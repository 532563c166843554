package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/DevHugoP/sightToScript/pkg/models"
	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/store"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// Service is the core structure service
type Service struct {
	Store  *store.Store
	Config *Config
	Logger *logrus.Entry
}

// Config holds service configuration
type Config struct {
	DataDir        string
	DefaultDialect script.Dialect
}

// New creates a new structure service
func New(config *Config, logger *logrus.Entry) (*Service, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	if config.DefaultDialect == "" {
		config.DefaultDialect = script.Bash
	}

	st, err := store.New(config.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	return &Service{
		Store:  st,
		Config: config,
		Logger: logger.WithField("component", "service"),
	}, nil
}

// Close releases the store.
func (s *Service) Close() error {
	return s.Store.Close()
}

// Open starts a session from ref: a path to a tree file when one exists,
// otherwise a stored structure id or name. "-" reads JSON from stdin.
func (s *Service) Open(ctx context.Context, ref string) (*Session, error) {
	if ref == "-" {
		return s.LoadReader(os.Stdin, tree.FormatJSON)
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return s.LoadFile(ref)
	}

	rec, err := s.Store.Resolve(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ref, err)
	}

	sess := NewSession(rec.Structure)
	sess.StoreID = rec.ID
	sess.Name = rec.Name
	s.Logger.WithFields(logrus.Fields{"id": rec.ID, "name": rec.Name}).Debug("opened stored structure")
	return sess, nil
}

// LoadFile starts a session from a JSON or YAML tree file.
func (s *Service) LoadFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree file: %w", err)
	}
	defer f.Close()

	sess, err := s.LoadReader(f, tree.DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	sess.SourcePath = path
	return sess, nil
}

// LoadReader starts a session from a tree document.
func (s *Service) LoadReader(r io.Reader, format tree.Format) (*Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	root, err := tree.Decode(data, format)
	if err != nil {
		return nil, err
	}
	folders, files := tree.Count(root)
	s.Logger.WithFields(logrus.Fields{"folders": folders, "files": files}).Debug("loaded tree")
	return NewSession(root), nil
}

// Save writes the session's present tree to the store. A session that came
// from the store is updated in place (renamed when name is given); any other
// session is stored as a new record under name.
func (s *Service) Save(ctx context.Context, sess *Session, name string) (*models.SavedStructure, error) {
	if sess == nil || sess.Present() == nil {
		return nil, errors.New("nothing to save")
	}
	name = strings.TrimSpace(name)

	var (
		rec *models.SavedStructure
		err error
	)
	if sess.StoreID != "" {
		upd := models.StructureUpdate{Structure: sess.Present()}
		if name != "" {
			upd.Name = &name
		}
		rec, err = s.Store.Update(ctx, sess.StoreID, upd)
	} else {
		if name == "" {
			name = sess.Present().Name
		}
		rec, err = s.Store.Save(ctx, name, sess.Present())
	}
	if err != nil {
		return nil, err
	}

	sess.MarkSaved(rec)
	s.Logger.WithFields(logrus.Fields{"id": rec.ID, "name": rec.Name}).Info("structure saved")
	return rec, nil
}

// List returns the saved structures, newest first.
func (s *Service) List(ctx context.Context) ([]*models.SavedStructure, error) {
	return s.Store.List(ctx)
}

// Delete removes a saved structure by id or name.
func (s *Service) Delete(ctx context.Context, ref string) (*models.SavedStructure, error) {
	rec, err := s.Store.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Delete(ctx, rec.ID); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"id": rec.ID, "name": rec.Name}).Info("structure deleted")
	return rec, nil
}

// Generate renders the session's present tree. An empty dialect means the
// configured default.
func (s *Service) Generate(sess *Session, d script.Dialect) (string, error) {
	if d == "" {
		d = s.Config.DefaultDialect
	}
	return sess.Script(d)
}
