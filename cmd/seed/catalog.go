// cmd/seed/catalog.go
package main

import productdom "dreamweave/internal/domain/product"

// starterCatalog is the bedsheet catalog the storefront launches with.
// Rating / Reviews are seeded aggregates; the review flow recomputes them
// once real reviews arrive.
var starterCatalog = []productdom.Product{
	{
		ID:            "1",
		Name:          "Luxe Egyptian Cotton Sheet Set",
		Description:   "Experience the ultimate in luxury with our 1000 thread count Egyptian cotton sheets. Incredibly soft and durable.",
		Price:         8500,
		OriginalPrice: 10500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-1.jpg?alt=media",
		Category:      "Premium",
		Colors:        []string{"White", "Ivory", "Silver"},
		Sizes:         []string{"Twin", "Full", "Queen", "King", "California King"},
		Rating:        4.9,
		Reviews:       342,
		Badge:         "Best Seller",
		Features:      []string{"1000 Thread Count", "100% Egyptian Cotton", "OEKO-TEX Certified", "Deep Pockets"},
	},
	{
		ID:            "2",
		Name:          "Organic Bamboo Silky Sheets",
		Description:   "Eco-friendly bamboo sheets that are naturally hypoallergenic and temperature regulating for perfect sleep.",
		Price:         6500,
		OriginalPrice: 8000,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-2.jpg?alt=media",
		Category:      "Eco-Friendly",
		Colors:        []string{"Natural", "Sage Green", "Ocean Blue", "Blush Pink"},
		Sizes:         []string{"Twin", "Full", "Queen", "King"},
		Rating:        4.8,
		Reviews:       256,
		Badge:         "Eco Choice",
		Features:      []string{"100% Organic Bamboo", "Hypoallergenic", "Temperature Regulating", "Silky Soft"},
	},
	{
		ID:          "3",
		Name:        "Classic Percale Cotton Set",
		Description: "Crisp, cool, and breathable percale sheets perfect for warm sleepers. A timeless choice for comfort.",
		Price:       4500,
		Image:       "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-3.jpg?alt=media",
		Category:    "Classic",
		Colors:      []string{"White", "Light Gray", "Navy", "Terracotta"},
		Sizes:       []string{"Twin", "Full", "Queen", "King"},
		Rating:      4.7,
		Reviews:     189,
		Features:    []string{"400 Thread Count", "100% Cotton", "Cool & Crisp", "Easy Care"},
	},
	{
		ID:            "4",
		Name:          "Hotel Collection Sateen",
		Description:   "Bring the luxury hotel experience home with our silky-smooth sateen weave sheets.",
		Price:         7000,
		OriginalPrice: 9000,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-4.jpg?alt=media",
		Category:      "Premium",
		Colors:        []string{"Pearl White", "Champagne", "Graphite"},
		Sizes:         []string{"Queen", "King", "California King"},
		Rating:        4.8,
		Reviews:       298,
		Badge:         "Hotel Quality",
		Features:      []string{"600 Thread Count", "Sateen Weave", "Lustrous Finish", "Wrinkle Resistant"},
	},
	{
		ID:            "5",
		Name:          "Microfiber Cloud Comfort",
		Description:   "Ultra-soft brushed microfiber sheets at an incredible value. Perfect for everyday luxury.",
		Price:         2500,
		OriginalPrice: 3500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-5.jpg?alt=media",
		Category:      "Value",
		Colors:        []string{"White", "Gray", "Blue", "Purple", "Coral"},
		Sizes:         []string{"Twin", "Full", "Queen", "King"},
		Rating:        4.5,
		Reviews:       567,
		Badge:         "Best Value",
		Features:      []string{"Brushed Microfiber", "Ultra Soft", "Fade Resistant", "Budget Friendly"},
	},
	{
		ID:            "6",
		Name:          "Linen Relaxed Elegance",
		Description:   "Premium European flax linen sheets that get softer with every wash. Effortlessly elegant.",
		Price:         9500,
		OriginalPrice: 12000,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-6.jpg?alt=media",
		Category:      "Premium",
		Colors:        []string{"Natural Flax", "Soft White", "Stone Gray", "Dusty Blue"},
		Sizes:         []string{"Twin", "Queen", "King"},
		Rating:        4.9,
		Reviews:       178,
		Badge:         "Premium Linen",
		Features:      []string{"100% European Flax", "Gets Softer Over Time", "Naturally Cooling", "Artisan Made"},
	},
	{
		ID:          "7",
		Name:        "Jersey Knit Comfort Set",
		Description: "Like your favorite t-shirt, but for your bed. Incredibly soft and stretchy jersey knit.",
		Price:       4000,
		Image:       "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-7.jpg?alt=media",
		Category:    "Casual",
		Colors:      []string{"Heather Gray", "Navy", "Black", "Oatmeal"},
		Sizes:       []string{"Twin", "Full", "Queen", "King"},
		Rating:      4.6,
		Reviews:     423,
		Features:    []string{"100% Cotton Jersey", "T-Shirt Soft", "No Ironing Needed", "Stretchy Fit"},
	},
	{
		ID:            "8",
		Name:          "Tencel Lyocell Luxury",
		Description:   "Sustainably made from eucalyptus trees, these sheets are silky smooth and moisture-wicking.",
		Price:         7500,
		OriginalPrice: 9500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-8.jpg?alt=media",
		Category:      "Eco-Friendly",
		Colors:        []string{"White", "Natural", "Seafoam", "Lavender"},
		Sizes:         []string{"Twin", "Full", "Queen", "King", "California King"},
		Rating:        4.8,
		Reviews:       234,
		Badge:         "Sustainable",
		Features:      []string{"TENCEL Lyocell", "Sustainably Sourced", "Moisture Wicking", "Silky Touch"},
	},
	{
		ID:            "9",
		Name:          "Silk Essence Collection",
		Description:   "Pure mulberry silk sheets for the ultimate in luxury and skin care. Naturally hypoallergenic and temperature regulating.",
		Price:         12500,
		OriginalPrice: 16000,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-9.jpg?alt=media",
		Category:      "Premium",
		Colors:        []string{"Champagne", "Pearl White", "Charcoal", "Rose Gold"},
		Sizes:         []string{"Queen", "King", "California King"},
		Rating:        5,
		Reviews:       145,
		Badge:         "Luxury",
		Features:      []string{"100% Mulberry Silk", "22 Momme Weight", "Anti-Aging Properties", "Temperature Control"},
	},
	{
		ID:            "10",
		Name:          "Flannel Cozy Nights",
		Description:   "Brushed cotton flannel sheets perfect for cold winter nights. Incredibly warm and soft.",
		Price:         4200,
		OriginalPrice: 5500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-10.jpg?alt=media",
		Category:      "Seasonal",
		Colors:        []string{"Plaid Red", "Forest Green", "Cream", "Gray Heather"},
		Sizes:         []string{"Twin", "Full", "Queen", "King"},
		Rating:        4.7,
		Reviews:       312,
		Badge:         "Winter Favorite",
		Features:      []string{"100% Cotton Flannel", "Double Brushed", "Extra Warm", "Pill Resistant"},
	},
	{
		ID:            "11",
		Name:          "Cooling Performance Sheets",
		Description:   "Advanced moisture-wicking technology keeps you cool all night. Perfect for hot sleepers.",
		Price:         6000,
		OriginalPrice: 7800,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-11.jpg?alt=media",
		Category:      "Performance",
		Colors:        []string{"Cool Blue", "Arctic White", "Slate Gray"},
		Sizes:         []string{"Twin", "Full", "Queen", "King", "California King"},
		Rating:        4.6,
		Reviews:       289,
		Badge:         "Cooling Tech",
		Features:      []string{"Moisture Wicking", "Breathable Mesh", "Quick Dry", "Temperature Control"},
	},
	{
		ID:          "12",
		Name:        "Organic Cotton Dream Set",
		Description: "GOTS certified organic cotton sheets. Pure, natural, and gentle on sensitive skin.",
		Price:       5500,
		Image:       "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-12.jpg?alt=media",
		Category:    "Eco-Friendly",
		Colors:      []string{"Natural White", "Soft Beige", "Sage", "Dusty Rose"},
		Sizes:       []string{"Twin", "Full", "Queen", "King"},
		Rating:      4.8,
		Reviews:     201,
		Badge:       "GOTS Certified",
		Features:    []string{"GOTS Certified", "100% Organic Cotton", "Chemical Free", "Eco-Friendly Dyes"},
	},
	{
		ID:            "13",
		Name:          "Supima Cotton Luxury",
		Description:   "Extra-long staple Supima cotton for exceptional softness and durability. Made in USA.",
		Price:         9000,
		OriginalPrice: 11500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-13.jpg?alt=media",
		Category:      "Premium",
		Colors:        []string{"Bright White", "Dove Gray", "Navy Blue", "Taupe"},
		Sizes:         []string{"Queen", "King", "California King"},
		Rating:        4.9,
		Reviews:       267,
		Badge:         "Made in USA",
		Features:      []string{"100% Supima Cotton", "800 Thread Count", "Made in USA", "Extra Long Staple"},
	},
	{
		ID:            "14",
		Name:          "Satin Smooth Elegance",
		Description:   "Luxurious satin weave polyester sheets with a silky smooth finish. Wrinkle-free and easy care.",
		Price:         3500,
		OriginalPrice: 4500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-14.jpg?alt=media",
		Category:      "Value",
		Colors:        []string{"Black", "Burgundy", "Gold", "Silver", "Royal Blue"},
		Sizes:         []string{"Twin", "Full", "Queen", "King"},
		Rating:        4.4,
		Reviews:       445,
		Features:      []string{"Satin Weave", "Wrinkle Free", "Easy Care", "Silky Smooth"},
	},
	{
		ID:            "15",
		Name:          "Hemp & Cotton Blend",
		Description:   "Sustainable hemp and organic cotton blend. Naturally antimicrobial and incredibly durable.",
		Price:         6800,
		OriginalPrice: 8500,
		Image:         "https://firebasestorage.googleapis.com/v0/b/vip-bedsheet.firebasestorage.app/o/products%2Fproduct-15.jpg?alt=media",
		Category:      "Eco-Friendly",
		Colors:        []string{"Natural", "Charcoal", "Olive Green"},
		Sizes:         []string{"Full", "Queen", "King"},
		Rating:        4.7,
		Reviews:       156,
		Badge:         "Sustainable",
		Features:      []string{"55% Hemp 45% Cotton", "Antimicrobial", "Ultra Durable", "Eco-Friendly"},
	},
}
