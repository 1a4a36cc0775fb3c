package models

// CreateProductForm represents the multipart form fields for POST /products.
// Price and stock arrive as strings and are parsed at the boundary; an
// optional image file is read separately from the multipart body.
type CreateProductForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Stock       string `form:"stock" binding:"required"`
	Category    string `form:"category" binding:"required"`
}

// CreateProductInput is the validated, typed input handed to the product
// service once the form fields have been parsed.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImageName   string // Original file name of the uploaded image, empty if none
	ImageData   []byte // Raw image bytes, nil if no image was attached
}
