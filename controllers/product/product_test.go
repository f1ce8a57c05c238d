package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newProductRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/products", CreateProduct(db))
	r.PUT("/api/admin/products/:id", UpdateProduct(db))
	r.DELETE("/api/admin/products/:id", DeleteProduct(db))
	r.GET("/api/products", GetProducts(db))
	r.GET("/api/products/:id", GetProductByID(db))
	r.GET("/api/categories", GetCategories(db))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const silkSaree = `{
	"product_id": "SAREE-1",
	"category": "Sarees",
	"name": "Banarasi Silk Saree",
	"price": 2500,
	"sale_price": 1999,
	"description": "Handwoven silk",
	"images": [{"url":"https://cdn.example.com/saree1.jpg","alt":"front"},{"url":"https://cdn.example.com/saree2.jpg"}],
	"sizes": ["Free Size"],
	"is_new_arrival": true,
	"seo": {"title":"Banarasi Silk Saree","slug":"banarasi-silk-saree"}
}`

func TestCreateProduct(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)

	w := do(t, r, http.MethodPost, "/api/admin/products", silkSaree)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var p models.Product
	if err := db.Where("product_id = ?", "SAREE-1").First(&p).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if p.SalePrice == nil || *p.SalePrice != 1999 {
		t.Errorf("sale price = %v, want 1999", p.SalePrice)
	}
	if len(p.Images) != 2 || p.Images[0].URL != "https://cdn.example.com/saree1.jpg" {
		t.Errorf("images not preserved in order: %+v", p.Images)
	}

	// duplicate catalogue code
	if w := do(t, r, http.MethodPost, "/api/admin/products", silkSaree); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate product_id: status = %d, want 400", w.Code)
	}
}

func TestCreateProductValidation(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)

	tests := []struct {
		name string
		body string
	}{
		{"sale above price", `{"product_id":"P1","category":"Sarees","name":"S","price":100,"sale_price":101}`},
		{"negative sale", `{"product_id":"P2","category":"Sarees","name":"S","price":100,"sale_price":-1}`},
		{"bad slug", `{"product_id":"P3","category":"Sarees","name":"S","price":100,"seo":{"slug":"Bad Slug"}}`},
		{"missing name", `{"product_id":"P4","category":"Sarees","price":100}`},
		{"empty image url", `{"product_id":"P5","category":"Sarees","name":"S","price":100,"images":[{"url":"  "}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, r, http.MethodPost, "/api/admin/products", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetProductByIDOrSlug(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)
	do(t, r, http.MethodPost, "/api/admin/products", silkSaree)

	for _, path := range []string{"/api/products/SAREE-1", "/api/products/banarasi-silk-saree"} {
		w := do(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}
	if w := do(t, r, http.MethodGet, "/api/products/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown product: %d, want 404", w.Code)
	}
}

func TestGetProductsFilters(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)

	do(t, r, http.MethodPost, "/api/admin/products", silkSaree)
	do(t, r, http.MethodPost, "/api/admin/products",
		`{"product_id":"DUP-1","category":"Dupattas","name":"Chiffon Dupatta","price":800}`)

	listLen := func(path string) int {
		w := do(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, w.Code)
		}
		var products []models.Product
		if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return len(products)
	}

	if got := listLen("/api/products"); got != 2 {
		t.Errorf("unfiltered = %d, want 2", got)
	}
	// category match is case-insensitive
	if got := listLen("/api/products?category=sArEeS"); got != 1 {
		t.Errorf("category filter = %d, want 1", got)
	}
	if got := listLen("/api/products?new_arrivals=true"); got != 1 {
		t.Errorf("new arrivals = %d, want 1", got)
	}
	if got := listLen("/api/products?min_price=1000"); got != 1 {
		t.Errorf("min_price filter = %d, want 1", got)
	}
	if got := listLen("/api/products?search=dupatta"); got != 1 {
		t.Errorf("search filter = %d, want 1", got)
	}
}

func TestUpdateProduct(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)
	do(t, r, http.MethodPost, "/api/admin/products", silkSaree)

	w := do(t, r, http.MethodPut, "/api/admin/products/SAREE-1", `{"price":3000,"clear_sale":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var p models.Product
	db.Where("product_id = ?", "SAREE-1").First(&p)
	if p.Price != 3000 {
		t.Errorf("price = %d, want 3000", p.Price)
	}
	if p.SalePrice != nil {
		t.Errorf("sale price = %v, want cleared", p.SalePrice)
	}
	if p.Name != "Banarasi Silk Saree" {
		t.Errorf("untouched field changed: %q", p.Name)
	}

	// an update may not break the sale-price invariant
	if w := do(t, r, http.MethodPut, "/api/admin/products/SAREE-1", `{"sale_price":9999}`); w.Code != http.StatusBadRequest {
		t.Errorf("invariant-breaking update: %d, want 400", w.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	db := setupDB(t)
	r := newProductRouter(db)
	do(t, r, http.MethodPost, "/api/admin/products", silkSaree)

	if w := do(t, r, http.MethodDelete, "/api/admin/products/SAREE-1", ""); w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/products/SAREE-1", ""); w.Code != http.StatusNotFound {
		t.Errorf("after delete: %d, want 404", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/api/admin/products/SAREE-1", ""); w.Code != http.StatusNotFound {
		t.Errorf("double delete: %d, want 404", w.Code)
	}
}
