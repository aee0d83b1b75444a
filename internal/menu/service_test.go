package menu

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

func newTestService(t *testing.T) (*Service, *mockRepository, *ImageStore) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	store := newImageStoreWithFs(afero.NewMemMapFs(), &config.StorageConfig{
		ImageRoot:     "/data/images",
		PublicBaseURL: "/images",
	}, logger)

	repo := newMockRepository()
	return NewService(logger, repo, store), repo, store
}

func seedItem(t *testing.T, svc *Service) *Item {
	menu, err := svc.CreateMenu("Summer", true)
	require.NoError(t, err)
	section, err := svc.CreateSection(menu.ID, "Tacos", 0)
	require.NoError(t, err)
	item, err := svc.CreateItem(section.ID, &Item{Name: "Al Pastor", PriceCents: 450})
	require.NoError(t, err)
	return item
}

func TestService_AttachImage(t *testing.T) {
	svc, _, store := newTestService(t)
	item := seedItem(t, svc)

	updated, err := svc.AttachImage(item.ID, strings.NewReader("fake-png-bytes"), ".png")
	require.NoError(t, err)

	assert.NotEmpty(t, updated.ImagePath)
	assert.True(t, strings.HasPrefix(updated.ImageURL, "/images/menu-items/"))
	assert.True(t, strings.HasSuffix(updated.ImagePath, ".png"))
	assert.True(t, store.Exists(updated.ImagePath))
}

func TestService_AttachImage_ReplacesPrevious(t *testing.T) {
	svc, _, store := newTestService(t)
	item := seedItem(t, svc)

	first, err := svc.AttachImage(item.ID, strings.NewReader("one"), ".png")
	require.NoError(t, err)
	firstPath := first.ImagePath

	second, err := svc.AttachImage(item.ID, strings.NewReader("two"), ".jpg")
	require.NoError(t, err)

	assert.NotEqual(t, firstPath, second.ImagePath)
	assert.False(t, store.Exists(firstPath))
	assert.True(t, store.Exists(second.ImagePath))
}

func TestService_AttachImage_UnknownItem(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AttachImage(9999, strings.NewReader("x"), ".png")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_RemoveImage(t *testing.T) {
	svc, repo, store := newTestService(t)
	item := seedItem(t, svc)

	attached, err := svc.AttachImage(item.ID, strings.NewReader("bytes"), ".png")
	require.NoError(t, err)

	removed, err := svc.RemoveImage(item.ID)
	require.NoError(t, err)
	assert.Empty(t, removed.ImageURL)
	assert.Empty(t, removed.ImagePath)
	assert.False(t, store.Exists(attached.ImagePath))

	stored, err := repo.GetItem(item.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ImageURL)
}

func TestService_DeleteItem_CleansUpImage(t *testing.T) {
	svc, repo, store := newTestService(t)
	item := seedItem(t, svc)

	attached, err := svc.AttachImage(item.ID, strings.NewReader("bytes"), ".png")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(item.ID))
	assert.False(t, store.Exists(attached.ImagePath))

	_, err = repo.GetItem(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_ActiveMenu(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ActiveMenu()
	assert.ErrorIs(t, err, ErrMenuNotFound)

	seedItem(t, svc)

	menu, err := svc.ActiveMenu()
	require.NoError(t, err)
	require.Len(t, menu.Sections, 1)
	require.Len(t, menu.Sections[0].Items, 1)
	assert.Equal(t, "Al Pastor", menu.Sections[0].Items[0].Name)
}

func TestService_CreateItem_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	menu, err := svc.CreateMenu("Summer", true)
	require.NoError(t, err)
	section, err := svc.CreateSection(menu.ID, "Tacos", 0)
	require.NoError(t, err)

	_, err = svc.CreateItem(section.ID, &Item{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.CreateItem(9999, &Item{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrSectionNotFound)
}
