package repository

import (
	"testing"

	"go-pos-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepoCreateAndFindAllSortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	seedProduct(t, db, "P2", "Zucchini", 300, 5)
	seedProduct(t, db, "P1", "Apple", 100, 10)
	seedProduct(t, db, "P3", "Milk", 200, 3)

	products, err := repo.FindAll(testCtx())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Apple", products[0].Name)
	assert.Equal(t, "Milk", products[1].Name)
	assert.Equal(t, "Zucchini", products[2].Name)
}

func TestProductRepoDuplicateID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	first := model.Product{ID: "P1", Name: "Apple", Price: 100, Stock: 10, Category: "food"}
	require.NoError(t, repo.Create(testCtx(), &first))

	second := model.Product{ID: "P1", Name: "Imposter", Price: 1, Stock: 1, Category: "food"}
	err := repo.Create(testCtx(), &second)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	// the original row is untouched
	stored, err := repo.FindByID(testCtx(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "Apple", stored.Name)
	assert.Equal(t, int64(100), stored.Price)
}

func TestProductRepoUpdateCoalescesImagePath(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	path := "uploads/products/abc.png"
	require.NoError(t, db.Create(&model.Product{
		ID: "P1", Name: "Apple", Price: 100, Stock: 10, Category: "food", ImagePath: &path,
	}).Error)

	// nil ImagePath keeps the stored value
	affected, err := repo.Update(testCtx(), "P1", ProductUpdate{
		Name: "Apple Red", Price: 120, Stock: 8, Category: "fruit", ImagePath: nil,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	stored, err := repo.FindByID(testCtx(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "Apple Red", stored.Name)
	require.NotNil(t, stored.ImagePath)
	assert.Equal(t, path, *stored.ImagePath)

	// an explicit value overwrites
	newPath := "uploads/products/def.jpg"
	_, err = repo.Update(testCtx(), "P1", ProductUpdate{
		Name: "Apple Red", Price: 120, Stock: 8, Category: "fruit", ImagePath: &newPath,
	})
	require.NoError(t, err)

	stored, err = repo.FindByID(testCtx(), "P1")
	require.NoError(t, err)
	require.NotNil(t, stored.ImagePath)
	assert.Equal(t, newPath, *stored.ImagePath)
}

func TestProductRepoUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)

	affected, err := repo.Update(testCtx(), "nope", ProductUpdate{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestProductRepoUpdateStockIsAbsolute(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, "P1", "Apple", 100, 10)

	affected, err := repo.UpdateStock(testCtx(), "P1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, 3, productStock(t, db, "P1"))

	affected, err = repo.UpdateStock(testCtx(), "missing", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestProductRepoDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, "P1", "Apple", 100, 10)

	affected, err := repo.Delete(testCtx(), "P1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	products, err := repo.FindAll(testCtx())
	require.NoError(t, err)
	assert.Empty(t, products)

	affected, err = repo.Delete(testCtx(), "P1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
