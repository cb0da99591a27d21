package repair

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunFixesCategoriesAndRemovesPromotionalFiles(t *testing.T) {
	dir := t.TempDir()
	original := "id,name,category\n" +
		"1,Pizzaria Bella,Novidade\n" +
		"2,Sushi House,Promoção da semana\n" +
		"3,Casa do Pão,Destaque\n" +
		"4,Burger Stop,hamburguer\n"
	writeFile(t, filepath.Join(dir, "restaurants", "restaurants_novidade.csv"), original)
	writeFile(t, filepath.Join(dir, "restaurants", "restaurants_japonesa.csv"), "id,nome,categoria\n5,Temaki Express,japonesa\n")
	writeFile(t, filepath.Join(dir, "products", "products_novidade_bella.csv"), "x\n")
	writeFile(t, filepath.Join(dir, "products", "products_promocao_sushi.csv"), "x\n")
	writeFile(t, filepath.Join(dir, "products", "products_novo_lugar.csv"), "x\n")
	writeFile(t, filepath.Join(dir, "products", "products_pizza_palace.csv"), "x\n")

	stats, err := New(dir, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 3, stats.CategoriesFixed)
	assert.Equal(t, 3, stats.FilesRemoved)
	assert.ElementsMatch(t, []string{
		"products_novidade_bella.csv", "products_promocao_sushi.csv", "products_novo_lugar.csv",
	}, stats.RemovedFiles)
	assert.FileExists(t, filepath.Join(dir, "products", "products_pizza_palace.csv"))

	fixed, err := os.ReadFile(filepath.Join(dir, "restaurants", "restaurants_novidade.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,name,category\n"+
		"1,Pizzaria Bella,Pizzas\n"+
		"2,Sushi House,Japonesa\n"+
		"3,Casa do Pão,Alimentação\n"+
		"4,Burger Stop,hamburguer\n", string(fixed))

	backup, err := os.ReadFile(filepath.Join(dir, "restaurants", "restaurants_novidade.csv"+BackupSuffix))
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))

	assert.Contains(t, stats.Changes, Change{
		File: "restaurants_novidade.csv", Restaurant: "Sushi House", From: "Promoção da semana", To: "Japonesa",
	})
}

func TestRunOnMissingDirectories(t *testing.T) {
	stats, err := New(t.TempDir(), nil).Run()
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
}

func TestFileWithoutCategoryColumnIsLeftAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restaurants", "restaurants_x.csv")
	writeFile(t, path, "id,name\n1,Novidade Bar\n")

	stats, err := New(dir, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesProcessed)
	assert.Zero(t, stats.CategoriesFixed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Novidade Bar\n", string(data))
}
