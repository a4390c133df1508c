// internal/models/demo.go
package models

// DemoProducts is the fixed catalog inserted into an empty product collection.
func DemoProducts() []*Product {
	return []*Product{
		{
			Title:       "Custom Performance Hoodie",
			Description: ptr("Breathable fabric, embroidered logos"),
			Price:       ptr(79.0),
			Category:    CategoryClothing,
			ImageURL:    ptr("/images/hoodie.jpg"),
			Tags:        []string{"hoodie", "embroidery"},
			InStock:     true,
		},
		{
			Title:       "Carbon Fiber Wrap Kit",
			Description: ptr("Premium vehicle vinyl wrap kit"),
			Price:       ptr(499.0),
			Category:    CategoryVehicle,
			ImageURL:    ptr("/images/wrap.jpg"),
			Tags:        []string{"wrap", "vehicle"},
			InStock:     true,
		},
		{
			Title:       "Laser-Engraved Power Bank",
			Description: ptr("10,000mAh with custom engraving"),
			Price:       ptr(39.0),
			Category:    CategoryGadgets,
			ImageURL:    ptr("/images/powerbank.jpg"),
			Tags:        []string{"engraving", "gift"},
			InStock:     true,
		},
	}
}

// DemoProjects is the fixed portfolio inserted into an empty project collection.
func DemoProjects() []*Project {
	return []*Project{
		{
			Title:     "Track-Ready Mustang Wrap",
			Summary:   ptr("Matte black with neon accents"),
			Service:   CategoryVehicle,
			HeroImage: ptr("/images/mustang.jpg"),
			Gallery:   []string{"/images/mustang1.jpg", "/images/mustang2.jpg"},
			Client:    ptr("Northshore Racing"),
		},
		{
			Title:     "Startup Team Jerseys",
			Summary:   ptr("Custom jerseys with heat-press numbers"),
			Service:   CategoryClothing,
			HeroImage: ptr("/images/jerseys.jpg"),
			Gallery:   []string{"/images/jersey1.jpg"},
			Client:    ptr("Team Nova"),
		},
		{
			Title:     "Corporate Gift Set",
			Summary:   ptr("Branded gadgets pack for conference"),
			Service:   CategoryGadgets,
			HeroImage: ptr("/images/gifts.jpg"),
			Gallery:   []string{"/images/gift1.jpg"},
			Client:    ptr("Acme Corp"),
		},
	}
}
