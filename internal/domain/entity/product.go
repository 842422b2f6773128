package entity

// Product fila de producto en la hoja de stock.
// ImageURL es nil cuando la celda está vacía o no es una URL https.
type Product struct {
	Name     string
	Quantity int
	ImageURL *string
}
