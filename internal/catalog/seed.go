package catalog

// seedRooms returns the static room definitions the catalog is loaded
// from at process start.
func seedRooms() []Room {
	return []Room{
		{
			ID:          "1",
			Name:        "Deluxe King Room",
			Type:        TypeDeluxe,
			Price:       199,
			Capacity:    2,
			Description: "Experience luxury in our spacious Deluxe King Room featuring a plush king-sized bed, elegant furnishings, and a modern bathroom with premium amenities. Perfect for couples or business travelers seeking comfort and style.",
			Amenities:   []string{"Free Wi-Fi", "Flat-screen TV", "Mini-bar", "Coffee machine", "Air conditioning", "Safe", "Hairdryer", "Bathrobes"},
			Images: []string{
				"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
				"https://images.pexels.com/photos/271619/pexels-photo-271619.jpeg",
				"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
			},
			Size:     32,
			Featured: true,
		},
		{
			ID:          "2",
			Name:        "Superior Twin Room",
			Type:        TypeSuperior,
			Price:       179,
			Capacity:    2,
			Description: "Our Superior Twin Room offers two comfortable single beds, a work desk, and a cozy seating area. The room is tastefully decorated and provides all the essential amenities for a pleasant stay.",
			Amenities:   []string{"Free Wi-Fi", "Flat-screen TV", "Mini-bar", "Coffee machine", "Air conditioning", "Safe", "Hairdryer"},
			Images: []string{
				"https://images.pexels.com/photos/279746/pexels-photo-279746.jpeg",
				"https://images.pexels.com/photos/210265/pexels-photo-210265.jpeg",
				"https://images.pexels.com/photos/260922/pexels-photo-260922.jpeg",
			},
			Size:     28,
			Featured: false,
		},
		{
			ID:          "3",
			Name:        "Executive Suite",
			Type:        TypeSuite,
			Price:       299,
			Capacity:    2,
			Description: "Indulge in luxury with our Executive Suite featuring a separate living area, king-sized bed, and panoramic city views. The spacious bathroom includes a bathtub and a walk-in shower. Perfect for extended stays or special occasions.",
			Amenities:   []string{"Free Wi-Fi", "Flat-screen TV", "Mini-bar", "Coffee machine", "Air conditioning", "Safe", "Hairdryer", "Bathrobes", "Slippers", "Separate living area", "Nespresso machine"},
			Images: []string{
				"https://images.pexels.com/photos/262048/pexels-photo-262048.jpeg",
				"https://images.pexels.com/photos/276583/pexels-photo-276583.jpeg",
				"https://images.pexels.com/photos/275845/pexels-photo-275845.jpeg",
			},
			Size:     48,
			Featured: true,
		},
		{
			ID:          "4",
			Name:        "Family Room",
			Type:        TypeFamily,
			Price:       249,
			Capacity:    4,
			Description: "Our spacious Family Room is designed with comfort in mind, featuring one king-sized bed and two single beds. The room includes a seating area and all necessary amenities to ensure a comfortable stay for families.",
			Amenities:   []string{"Free Wi-Fi", "Flat-screen TV", "Mini-bar", "Coffee machine", "Air conditioning", "Safe", "Hairdryer", "Child-friendly amenities"},
			Images: []string{
				"https://images.pexels.com/photos/237371/pexels-photo-237371.jpeg",
				"https://images.pexels.com/photos/172872/pexels-photo-172872.jpeg",
				"https://images.pexels.com/photos/271743/pexels-photo-271743.jpeg",
			},
			Size:     42,
			Featured: false,
		},
		{
			ID:          "5",
			Name:        "Presidential Suite",
			Type:        TypeSuite,
			Price:       499,
			Capacity:    2,
			Description: "Our most luxurious accommodation, the Presidential Suite offers unparalleled elegance and comfort. Featuring a spacious bedroom, separate living and dining areas, and a private balcony with stunning views. The suite includes premium amenities and personalized service.",
			Amenities:   []string{"Free Wi-Fi", "Flat-screen TV", "Mini-bar", "Coffee machine", "Air conditioning", "Safe", "Hairdryer", "Bathrobes", "Slippers", "Separate living area", "Nespresso machine", "Private balcony", "Jacuzzi", "Butler service"},
			Images: []string{
				"https://images.pexels.com/photos/1579253/pexels-photo-1579253.jpeg",
				"https://images.pexels.com/photos/1457847/pexels-photo-1457847.jpeg",
				"https://images.pexels.com/photos/3201763/pexels-photo-3201763.jpeg",
			},
			Size:     75,
			Featured: true,
		},
		{
			ID:          "6",
			Name:        "Standard Queen Room",
			Type:        TypeStandard,
			Price:       149,
			Capacity:    2,
			Description: "Our Standard Queen Room offers comfortable accommodations at a great value. The room features a queen-sized bed, a work desk, and a private bathroom with a shower. Perfect for short stays or budget-conscious travelers.",
			Amenities:   []string{"Free Wi-Fi", "Flat-screen TV", "Air conditioning", "Safe", "Hairdryer"},
			Images: []string{
				"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
				"https://images.pexels.com/photos/271619/pexels-photo-271619.jpeg",
				"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
			},
			Size:     24,
			Featured: false,
		},
	}
}
