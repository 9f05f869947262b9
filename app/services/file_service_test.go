package services

import (
	"io"
	"strings"
	"testing"

	"csvvault/app/models"
	"csvvault/app/repo"
	"csvvault/app/storage"

	"github.com/stretchr/testify/require"
)

func TestUploadCountsRowsAndColumns(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)

	f, err := files.Upload(alice, "data.csv", strings.NewReader("a,b,c\n1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	require.Equal(t, alice.ID, f.OwnerID)
	require.Equal(t, "data.csv", f.Filename)
	require.Equal(t, int64(18), f.Size)
	require.Equal(t, 3, f.RowCount)
	require.Equal(t, 3, f.ColumnCount)
	require.False(t, f.UploadTime.IsZero())
}

func TestUploadRejectsNonCSV(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)

	_, err = files.Upload(alice, "data.txt", strings.NewReader("a,b\n"))
	require.ErrorIs(t, err, ErrInvalidFile)
}

func TestUploadRejectsMalformedCSV(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)

	// unterminated quote
	_, err = files.Upload(alice, "bad.csv", strings.NewReader("a,\"b\n1,2\n"))
	require.ErrorIs(t, err, ErrInvalidFile)
}

func TestUploadEnforcesSizeCap(t *testing.T) {
	users, _ := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)

	gdb := newTestDB(t)
	blobs, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	small := NewFileService(repo.NewFileRepository(gdb), blobs, 10)

	_, err = small.Upload(alice, "big.csv", strings.NewReader("a,b\n1,2\n3,4\n5,6\n"))
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestGetOwnershipRules(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)
	bob, err := users.Register("bob", "p2")
	require.NoError(t, err)
	admin, err := users.CreateUser("root", "p3", models.RoleAdmin)
	require.NoError(t, err)

	f, err := files.Upload(alice, "data.csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	got, err := files.Get(alice, f.ID)
	require.NoError(t, err)
	require.Equal(t, f.ID, got.ID)

	_, err = files.Get(bob, f.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = files.Get(admin, f.ID)
	require.NoError(t, err)

	_, err = files.Get(alice, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAdminSeesAll(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)
	bob, err := users.Register("bob", "p2")
	require.NoError(t, err)
	admin, err := users.CreateUser("root", "p3", models.RoleAdmin)
	require.NoError(t, err)

	_, err = files.Upload(alice, "a.csv", strings.NewReader("x\n"))
	require.NoError(t, err)
	_, err = files.Upload(bob, "b.csv", strings.NewReader("y\n"))
	require.NoError(t, err)

	own, err := files.List(alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "a.csv", own[0].Filename)

	all, err := files.List(admin)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestRename(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)
	bob, err := users.Register("bob", "p2")
	require.NoError(t, err)

	f, err := files.Upload(alice, "old.csv", strings.NewReader("x\n"))
	require.NoError(t, err)

	renamed, err := files.Rename(alice, f.ID, "new.csv")
	require.NoError(t, err)
	require.Equal(t, "new.csv", renamed.Filename)

	_, err = files.Rename(bob, f.ID, "theirs.csv")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = files.Rename(alice, f.ID, "")
	require.ErrorIs(t, err, ErrInvalidFile)
}

func TestDeleteRemovesRowAndBlob(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)
	bob, err := users.Register("bob", "p2")
	require.NoError(t, err)

	f, err := files.Upload(alice, "data.csv", strings.NewReader("a,b\n"))
	require.NoError(t, err)

	require.ErrorIs(t, files.Delete(bob, f.ID), ErrForbidden)
	require.NoError(t, files.Delete(alice, f.ID))

	_, err = files.Get(alice, f.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadRoundTrip(t *testing.T) {
	users, files := newServices(t)
	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)

	content := "a,b\n1,2\n"
	f, err := files.Upload(alice, "data.csv", strings.NewReader(content))
	require.NoError(t, err)

	rc, meta, err := files.Open(alice, f.ID)
	require.NoError(t, err)
	defer rc.Close()
	require.Equal(t, f.ID, meta.ID)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, content, string(got))
}
