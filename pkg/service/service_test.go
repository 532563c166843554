package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/store"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	s, err := New(&Config{DataDir: t.TempDir()}, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestNewDefaultsDialect(t *testing.T) {
	s := newTestService(t)
	if s.Config.DefaultDialect != script.Bash {
		t.Errorf("default dialect = %q, want bash", s.Config.DefaultDialect)
	}
}

func TestLoadFile(t *testing.T) {
	s := newTestService(t)
	path := writeFile(t, "layout.yaml", `
name: web
type: folder
children:
  - name: public
    type: folder
    children:
      - name: index.html
        type: file
`)

	sess, err := s.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if sess.SourcePath != path {
		t.Errorf("SourcePath = %q, want %q", sess.SourcePath, path)
	}
	if sess.Modified() {
		t.Error("fresh session should not be modified")
	}

	out, err := s.Generate(sess, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	want := "#!/bin/bash\nmkdir -p \"public\"\ntouch \"public/index.html\""
	if out != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", out, want)
	}

	if _, err := s.Generate(sess, script.Dialect("fish")); !errors.Is(err, script.ErrUnsupportedDialect) {
		t.Errorf("expected ErrUnsupportedDialect, got %v", err)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	s := newTestService(t)
	path := writeFile(t, "bad.json", `{"name":"x","type":"file"}`)

	_, err := s.LoadFile(path)
	if !errors.Is(err, tree.ErrInvalidTree) {
		t.Fatalf("expected ErrInvalidTree, got %v", err)
	}

	if _, err := s.LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestSaveOpenRoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	sess, err := s.LoadReader(strings.NewReader(`{"name":"proj","type":"folder","children":[{"name":"a.txt","type":"file"}]}`), tree.FormatJSON)
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}

	rec, err := s.Save(ctx, sess, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if rec.Name != "proj" {
		t.Errorf("name defaults to the root name, got %q", rec.Name)
	}
	if sess.StoreID != rec.ID || sess.Name != "proj" {
		t.Errorf("session not linked to record: %+v", sess)
	}

	// Edit and save again: the record is updated in place.
	if out := sess.Rename(sess.Present().Children[0].ID, "b.txt"); !out.Applied {
		t.Fatalf("rename rejected: %s", out.Reason)
	}
	if !sess.Modified() {
		t.Error("session should be modified after a rename")
	}
	again, err := s.Save(ctx, sess, "renamed")
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if again.ID != rec.ID {
		t.Errorf("second save created a new record %s", again.ID)
	}
	if sess.Modified() {
		t.Error("session should be clean after saving")
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "renamed" {
		t.Fatalf("unexpected list: %+v", list)
	}

	opened, err := s.Open(ctx, "renamed")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if opened.StoreID != rec.ID {
		t.Errorf("opened StoreID = %s, want %s", opened.StoreID, rec.ID)
	}
	if !tree.Equal(sess.Present(), opened.Present()) {
		t.Errorf("opened tree differs:\n%s", tree.Outline(opened.Present()))
	}
}

func TestOpenPrefersFiles(t *testing.T) {
	s := newTestService(t)
	path := writeFile(t, "tree.json", `{"name":"f","type":"folder"}`)

	sess, err := s.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if sess.SourcePath != path || sess.StoreID != "" {
		t.Errorf("expected a file session, got %+v", sess)
	}

	if _, err := s.Open(context.Background(), "no-such-structure"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	sess := NewSession(tree.NewFolder("tmp"))
	rec, err := s.Save(ctx, sess, "scratch")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deleted, err := s.Delete(ctx, "scratch")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != rec.ID {
		t.Errorf("deleted %s, want %s", deleted.ID, rec.ID)
	}
	if _, err := s.Delete(ctx, "scratch"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSaveNothing(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Save(context.Background(), &Session{}, "x"); err == nil {
		t.Error("expected error saving an empty session")
	}
}

func TestSaveWithoutChangesKeepsTimestamp(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	sess := NewSession(tree.NewFolder("proj", tree.NewFile("a.txt")))
	rec, err := s.Save(ctx, sess, "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fileID := sess.Present().Children[0].ID
	sess.Rename(fileID, "b.txt")
	sess.Rename(fileID, "a.txt")
	if sess.Modified() {
		t.Error("renaming back to the saved shape should clear the modified flag")
	}

	again, err := s.Save(ctx, sess, "")
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if !again.UpdatedAt.Equal(rec.UpdatedAt) {
		t.Errorf("an unchanged save should not touch updated_at: %v -> %v", rec.UpdatedAt, again.UpdatedAt)
	}
}
