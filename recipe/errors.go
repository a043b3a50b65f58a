package recipe

import "errors"

var (
	// ErrEmptyCatalog indicates the recipe set contains no recipes.
	ErrEmptyCatalog = errors.New("recipe: catalog must contain at least one recipe")
	// ErrNegativeRate indicates a recipe rate below zero.
	ErrNegativeRate = errors.New("recipe: rates must be nonnegative")
	// ErrBadCatalogJSON indicates the raw catalog document is not valid JSON.
	ErrBadCatalogJSON = errors.New("recipe: catalog document is not valid JSON")
	// ErrUnknownRecipe indicates a recipe name absent from the catalog.
	ErrUnknownRecipe = errors.New("recipe: unknown recipe")
)
