package application

import "github.com/costeladotiti/cardapio/internal/menu/domain"

var products = []domain.Product{
	{
		ID:                 "casa",
		Name:               "Pão da Casa",
		Description:        "Pão artesanal, costela desfiada 100g, queijo derretido, alface e banana frita, cebola roxa.",
		PriceCents:         2000,
		OriginalPriceCents: 2500,
		Category:           domain.CategorySandwiches,
		Image:              "/images/pao-da-casa.jpg",
		Available:          true,
		Customizable:       true,
		Badges:             []string{"popular", "discount"},
		Features:           []string{"25 min", "Defumado", "100g"},
		Rating:             4.8,
		Reviews:            89,
	},
	{
		ID:           "titi",
		Name:         "Pão do Titi",
		Description:  "Pão especial, costela premium 150g, queijo mussarela, bacon crocante, alface, cebola roxa e banana frita.",
		PriceCents:   2700,
		Category:     domain.CategorySandwiches,
		Image:        "/images/pao-do-titi.jpg",
		Available:    true,
		Customizable: true,
		Badges:       []string{"bestseller", "recommended"},
		Features:     []string{"Premium", "Defumado 12h", "Premiado"},
		Rating:       4.9,
		Reviews:      156,
	},
	{
		ID:           "premium",
		Name:         "Cupim Premium",
		Description:  "Pão baguete artesanal, Cupim premium 150g, queijo cheddar, cebola caramelizada e molho barbecue.",
		PriceCents:   2990,
		Category:     domain.CategorySandwiches,
		Image:        "/images/cupim-premium.jpg",
		Available:    false,
		Customizable: true,
		Badges:       []string{"premium", "exclusive"},
		Features:     []string{"Gourmet", "180g", "Chef"},
		Rating:       4.9,
		Reviews:      67,
	},
	{
		ID:          "agua_mineral",
		Name:        "Água Mineral",
		Description: "Água mineral natural gelada 500ml",
		PriceCents:  300,
		Category:    domain.CategoryDrinks,
		Image:       "/images/agua-mineral.jpg",
		Available:   true,
	},
	{
		ID:          "agua_gas",
		Name:        "Água Mineral c/ Gás",
		Description: "Água mineral com gás gelada 500ml",
		PriceCents:  400,
		Category:    domain.CategoryDrinks,
		Image:       "/images/agua-gas.jpg",
		Available:   true,
	},
	{
		ID:          "refri_lata",
		Name:        "Refrigerante Lata",
		Description: "Refrigerante gelado 350ml - Escolha o sabor",
		PriceCents:  600,
		Category:    domain.CategoryDrinks,
		Image:       "/images/refri-lata.jpg",
		Available:   true,
		Flavors:     []string{"Coca-Cola", "Coca Zero", "Guaraná", "Guaraná Zero", "Fanta"},
	},
	{
		ID:          "refri_1l",
		Name:        "Refrigerante 1L",
		Description: "Refrigerante 1L para compartilhar - Escolha o sabor",
		PriceCents:  1100,
		Category:    domain.CategoryDrinks,
		Image:       "/images/refri-1l.jpg",
		Available:   true,
		Flavors:     []string{"Coca Litro", "Guaraná Litro", "Fanta Litro"},
	},
	{
		ID:          "batata_150",
		Name:        "Batata Frita 150g",
		Description: "Batata rústica crocante individual",
		PriceCents:  1000,
		Category:    domain.CategorySides,
		Image:       "/images/batata-150g.jpg",
		Available:   true,
	},
	{
		ID:          "batata_300",
		Name:        "Batata Frita 250g",
		Description: "Batata rústica crocante para compartilhar",
		PriceCents:  1500,
		Category:    domain.CategorySides,
		Image:       "/images/batata-300g.jpg",
		Available:   true,
	},
}

var additionals = []domain.Additional{
	{ID: "requeijao", Name: "Requeijão", Description: "Requeijão cremoso", PriceCents: 300},
	{ID: "bacon", Name: "Bacon", Description: "Bacon crocante defumado", PriceCents: 300},
	{ID: "banana", Name: "Banana Frita", Description: "Banana doce dourada", PriceCents: 200},
	{ID: "queijo_extra", Name: "Queijo Extra", Description: "Porção extra de queijo derretido", PriceCents: 400},
	{ID: "molho_barbecue", Name: "Molho Barbecue", Description: "Molho barbecue artesanal", PriceCents: 250},
	{ID: "molho_picante", Name: "Molho Picante", Description: "Pimenta especial da casa", PriceCents: 200},
}

var restaurant = domain.Restaurant{
	Name:           "Costela do Titi",
	Subtitle:       "Sanduíches Gourmet",
	Phone:          "5569992588282",
	Address:        "Av. Tiradentes, 2958 - Embratel",
	FullAddress:    "Porto Velho - RO, 76820-882",
	Hours:          "Seg-Dom: 11h às 23h",
	DeliveryText:   "A combinar",
	WhatsAppNumber: "5569992588282",
	Coordinates:    domain.Coordinates{Lat: -8.7619, Lng: -63.9039},
	DeliveryRanges: []domain.DeliveryRange{
		{MaxDistanceKm: 3, PriceCents: 500},
		{MaxDistanceKm: 6, PriceCents: 800},
		{MaxDistanceKm: 10, PriceCents: 1200},
		{MaxDistanceKm: 15, PriceCents: 1800},
	},
}
