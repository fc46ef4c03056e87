package services

import "github.com/shoplist/backend/internal/models"

type seedUser struct {
	Email    string
	FullName string
	Password string
	Roles    []models.Role
}

var seedUsers = []seedUser{
	{Email: "admin@shoplist.dev", FullName: "Administrator", Password: "123456", Roles: []models.Role{models.RoleAdmin}},
	{Email: "melissa@shoplist.dev", FullName: "Melissa Flores", Password: "123456", Roles: []models.Role{models.RoleUser}},
	{Email: "hernando@shoplist.dev", FullName: "Hernando Vallejo", Password: "123456", Roles: []models.Role{models.RoleSuperUser}},
}

var seedItems = []struct {
	Name     string
	Quantity float64
}{
	{Name: "Chicken breast boneless", Quantity: 2},
	{Name: "Ground beef", Quantity: 1},
	{Name: "Eggs", Quantity: 12},
	{Name: "Whole milk", Quantity: 2},
	{Name: "Butter", Quantity: 1},
	{Name: "Cheddar cheese", Quantity: 1},
	{Name: "Greek yogurt", Quantity: 4},
	{Name: "White bread", Quantity: 1},
	{Name: "Basmati rice", Quantity: 1},
	{Name: "Spaghetti", Quantity: 2},
	{Name: "Tomatoes", Quantity: 6},
	{Name: "Onions", Quantity: 4},
	{Name: "Garlic", Quantity: 2},
	{Name: "Potatoes", Quantity: 8},
	{Name: "Carrots", Quantity: 5},
	{Name: "Blue cheese", Quantity: 1},
	{Name: "Bananas", Quantity: 6},
	{Name: "Apples", Quantity: 4},
	{Name: "Oranges", Quantity: 4},
	{Name: "Olive oil", Quantity: 1},
	{Name: "Black beans", Quantity: 3},
	{Name: "Canned tuna", Quantity: 4},
	{Name: "Coffee beans", Quantity: 1},
	{Name: "Orange juice", Quantity: 1},
	{Name: "Paper towels", Quantity: 2},
	{Name: "Dish soap", Quantity: 1},
}

var seedLists = []string{
	"Weekly groceries",
	"Party supplies",
	"Office pantry",
}
