package scaffold

import "github.com/expressgen-labs/expressgen/internal/answers"

// Field is one Mongoose schema path of a generated model.
type Field struct {
	Name   string
	Type   string // Mongoose schema type: String, Number, ...
	Unique bool
}

// Entity is a resource component with its own controller, router, and model.
type Entity struct {
	Name   string // singular, lowercase: "user"
	Plural string // "users"
	Model  string // "User"
	Models string // "Users"
	Fields []Field
}

var (
	userEntity = Entity{
		Name:   "user",
		Plural: "users",
		Model:  "User",
		Models: "Users",
		Fields: []Field{
			{Name: "name", Type: "String"},
			{Name: "email", Type: "String", Unique: true},
			{Name: "password", Type: "String"},
		},
	}
	productEntity = Entity{
		Name:   "product",
		Plural: "products",
		Model:  "Product",
		Models: "Products",
		Fields: []Field{
			{Name: "name", Type: "String"},
			{Name: "description", Type: "String"},
			{Name: "price", Type: "Number"},
			{Name: "stock", Type: "Number"},
		},
	}
)

// Entities returns the enabled resource components, users before products.
func Entities(a answers.Answers) []Entity {
	var out []Entity
	if a.Users {
		out = append(out, userEntity)
	}
	if a.Products {
		out = append(out, productEntity)
	}
	return out
}
