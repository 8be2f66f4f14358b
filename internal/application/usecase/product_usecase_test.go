package usecase_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/losmayitos/appstore-api/internal/application/dto"
	"github.com/losmayitos/appstore-api/internal/application/usecase"
	"github.com/losmayitos/appstore-api/internal/domain"
	"github.com/losmayitos/appstore-api/internal/domain/entity"
	"github.com/losmayitos/appstore-api/internal/infrastructure/memory"
	"github.com/losmayitos/appstore-api/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUseCase arma el caso de uso con repositorio en memoria y almacén de
// imágenes real sobre un directorio temporal.
func newUseCase(t *testing.T) (*usecase.ProductUseCase, *memory.ProductRepo, string) {
	t.Helper()
	repo := memory.NewProductRepository()
	root := t.TempDir()
	return usecase.NewProductUseCase(repo, storage.NewLocalImageStore(root)), repo, root
}

func validForm() dto.ProductForm {
	return dto.ProductForm{
		Name:        "Chiles en vinagre",
		UnitMeasure: "gramos",
		NetContent:  250,
		Price:       decimal.NewFromFloat(35.50),
		Stock:       12,
	}
}

// makeFileHeader construye un *multipart.FileHeader real parseando un
// formulario multipart en memoria, para ejercer el mismo camino que Fiber.
func makeFileHeader(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func storedImagePath(root, publicPath string) string {
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_SinArchivoAsignaSentinel(t *testing.T) {
	uc, _, _ := newUseCase(t)

	p, err := uc.Create(validForm(), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultImagePath, p.ImagePath)
	assert.Equal(t, 1, p.ID, "el almacén asigna el primer ID")
}

func TestCreate_ConImagenGuardaArchivo(t *testing.T) {
	uc, _, root := newUseCase(t)
	file := makeFileHeader(t, "foto.png", "image/png", []byte("png-bytes"))

	p, err := uc.Create(validForm(), file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.ImagePath, "/images/"), "ruta pública bajo /images")
	assert.True(t, strings.HasSuffix(p.ImagePath, "_foto.png"), "conserva el nombre original tras el prefijo único")
	assert.FileExists(t, storedImagePath(root, p.ImagePath))
}

func TestCreate_FormatosDeImagen(t *testing.T) {
	uc, _, _ := newUseCase(t)

	for _, ct := range []string{"image/jpeg", "image/png", "image/gif"} {
		_, err := uc.Create(validForm(), makeFileHeader(t, "img", ct, []byte("x")))
		assert.NoError(t, err, "formato %s debe aceptarse", ct)
	}

	_, err := uc.Create(validForm(), makeFileHeader(t, "nota.txt", "text/plain", []byte("x")))
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
}

func TestCreate_FormularioInvalidoNoPersiste(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	form := validForm()
	form.Price = decimal.Zero
	_, err := uc.Create(form, nil)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok, "debe fallar con error de validación")

	total, _ := repo.Count()
	assert.Zero(t, total, "nada debe persistirse tras una validación fallida")
}

// Round trip: crear y leer de inmediato devuelve los mismos valores.
func TestCreate_RoundTrip(t *testing.T) {
	uc, _, _ := newUseCase(t)
	form := validForm()

	created, err := uc.Create(form, nil)
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, form.Name, got.Name)
	assert.Equal(t, form.UnitMeasure, got.UnitMeasure)
	assert.Equal(t, form.NetContent, got.NetContent)
	assert.True(t, form.Price.Equal(got.Price))
	assert.Equal(t, form.Stock, got.Stock)
	assert.Equal(t, created.ImagePath, got.ImagePath)
}

// ── List ──────────────────────────────────────────────────────────────────────

func TestList_PaginaDe10YTotalPaginas(t *testing.T) {
	uc, _, _ := newUseCase(t)
	for i := 0; i < 25; i++ {
		_, err := uc.Create(validForm(), nil)
		require.NoError(t, err)
	}

	page, err := uc.List(1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 3, page.TotalPaginas, "ceil(25/10) = 3")

	page, err = uc.List(3)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 21, page.Items[0].ID, "orden de inserción")
}

func TestList_PaginaFueraDeRangoDevuelveVacia(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Create(validForm(), nil)
	require.NoError(t, err)

	page, err := uc.List(99)
	require.NoError(t, err)
	assert.Empty(t, page.Items, "página fuera de rango no es error")
	assert.Equal(t, 99, page.Pagina)
	assert.Equal(t, 1, page.TotalPaginas)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestUpdate_SobrescribeEscalaresYConservaImagen(t *testing.T) {
	uc, _, _ := newUseCase(t)
	created, err := uc.Create(validForm(), makeFileHeader(t, "a.png", "image/png", []byte("a")))
	require.NoError(t, err)

	form := validForm()
	form.Name = "Chiles chipotle"
	form.Stock = 3
	updated, err := uc.Update(created.ID, form, nil)
	require.NoError(t, err)
	assert.Equal(t, "Chiles chipotle", updated.Name)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, created.ImagePath, updated.ImagePath, "sin archivo nuevo la imagen queda intacta")
}

func TestUpdate_ImagenNuevaBorraLaAnterior(t *testing.T) {
	uc, _, root := newUseCase(t)
	created, err := uc.Create(validForm(), makeFileHeader(t, "vieja.png", "image/png", []byte("v")))
	require.NoError(t, err)
	oldPath := storedImagePath(root, created.ImagePath)
	require.FileExists(t, oldPath)

	updated, err := uc.Update(created.ID, validForm(), makeFileHeader(t, "nueva.png", "image/png", []byte("n")))
	require.NoError(t, err)
	assert.NotEqual(t, created.ImagePath, updated.ImagePath)
	assert.NoFileExists(t, oldPath, "la imagen anterior debe borrarse del disco")
	assert.FileExists(t, storedImagePath(root, updated.ImagePath))
}

func TestUpdate_NoTocaElSentinel(t *testing.T) {
	uc, _, root := newUseCase(t)
	sentinel := filepath.Join(root, "images", "noDisponible.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(sentinel), 0o755))
	require.NoError(t, os.WriteFile(sentinel, []byte("jpg"), 0o644))

	created, err := uc.Create(validForm(), nil) // queda con el sentinel
	require.NoError(t, err)

	_, err = uc.Update(created.ID, validForm(), makeFileHeader(t, "n.png", "image/png", []byte("n")))
	require.NoError(t, err)
	assert.FileExists(t, sentinel, "el sentinel nunca se borra")
}

func TestUpdate_NoExisteDevuelveNotFound(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Update(42, validForm(), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete_BorraFilaEImagen(t *testing.T) {
	uc, repo, root := newUseCase(t)
	created, err := uc.Create(validForm(), makeFileHeader(t, "x.gif", "image/gif", []byte("g")))
	require.NoError(t, err)
	imgPath := storedImagePath(root, created.ImagePath)

	require.NoError(t, uc.Delete(created.ID))
	assert.NoFileExists(t, imgPath)
	total, _ := repo.Count()
	assert.Zero(t, total)
}

func TestDelete_ConSentinelLoDejaEnDisco(t *testing.T) {
	uc, _, root := newUseCase(t)
	sentinel := filepath.Join(root, "images", "noDisponible.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(sentinel), 0o755))
	require.NoError(t, os.WriteFile(sentinel, []byte("jpg"), 0o644))

	created, err := uc.Create(validForm(), nil)
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID))
	assert.FileExists(t, sentinel)
}

func TestDelete_NoExisteNoMuta(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	_, err := uc.Create(validForm(), nil)
	require.NoError(t, err)

	err = uc.Delete(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	total, _ := repo.Count()
	assert.Equal(t, 1, total, "un borrado fallido no debe mutar el almacén")
}

// ── NextID ────────────────────────────────────────────────────────────────────

func TestNextID_VacioYConDatos(t *testing.T) {
	uc, repo, _ := newUseCase(t)

	next, err := uc.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, next, "almacén vacío sugiere 1")

	for i := 0; i < 7; i++ {
		_, err := uc.Create(validForm(), nil)
		require.NoError(t, err)
	}
	max, _ := repo.MaxID()
	require.Equal(t, 7, max)

	next, err = uc.NextID()
	require.NoError(t, err)
	assert.Equal(t, 8, next)
}

// Documenta que el siguiente ID es solo informativo: dos lecturas sin insert
// de por medio devuelven el mismo valor (la carrera es aceptada, el ID real
// lo asigna el insert).
func TestNextID_EsSoloInformativo(t *testing.T) {
	uc, _, _ := newUseCase(t)
	_, err := uc.Create(validForm(), nil)
	require.NoError(t, err)

	a, err := uc.NextID()
	require.NoError(t, err)
	b, err := uc.NextID()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
