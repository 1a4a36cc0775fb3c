package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"shoply-be/internal/apperrors"
	"shoply-be/internal/entities"
	"shoply-be/internal/models"
	"shoply-be/internal/service"
)

type ProductController struct {
	productService service.ProductService
	frontendURL    string
}

func NewProductController(productService service.ProductService, frontendURL string) *ProductController {
	return &ProductController{
		productService: productService,
		frontendURL:    frontendURL,
	}
}

// Create handles POST /products (multipart form)
func (pc *ProductController) Create(c *gin.Context) {
	var form models.CreateProductForm
	if err := c.ShouldBind(&form); err != nil {
		writeBindingError(c, err)
		return
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		writeError(c, apperrors.Validation("Invalid price"))
		return
	}
	stock, err := strconv.Atoi(form.Stock)
	if err != nil {
		writeError(c, apperrors.Validation("Invalid stock"))
		return
	}

	input := &models.CreateProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Stock:       stock,
		Category:    form.Category,
	}

	// Image is optional; when present its bytes are passed through to the
	// media uploader.
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(c, err)
			return
		}
		input.ImageName = fileHeader.Filename
		input.ImageData = data
	}

	product, err := pc.productService.CreateProduct(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// List handles GET /products with an optional search query param
func (pc *ProductController) List(c *gin.Context) {
	search := c.Query("search")

	products, err := pc.productService.ListProducts(search)
	if err != nil {
		writeError(c, err)
		return
	}
	if products == nil {
		products = []*entities.Product{}
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Message: "Products fetched",
		Data:    products,
	})
}

// Delete handles DELETE /products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := pc.productService.DeleteProduct(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product deleted"})
}

// QRCode handles GET /products/:id/qrcode - renders a QR code pointing at
// the product's storefront page.
func (pc *ProductController) QRCode(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.productService.GetProduct(id)
	if err != nil {
		writeError(c, err)
		return
	}

	productURL := pc.frontendURL + "/products/" + product.ID

	qrCode, err := qrcode.New(productURL, qrcode.Medium)
	if err != nil {
		writeError(c, err)
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
