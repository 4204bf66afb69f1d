package structs

const CategoryAll = "all"

type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Sizes    []string `json:"sizes"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
