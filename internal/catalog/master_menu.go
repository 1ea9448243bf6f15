package catalog

import "spiceroute-datagen/internal/domain"

// masterMenu is the shared item catalog; every restaurant sells all of it.
var masterMenu = []domain.MenuItem{
	// Starters
	{ID: "ITEM-101", Name: "Samosa (2 pcs)", Category: "Starter", Price: 18.00, Ingredients: "Potato, Peas, Spices, Pastry", IsVegetarian: true, SpiceLevel: domain.SpiceMedium},
	{ID: "ITEM-102", Name: "Paneer Tikka", Category: "Starter", Price: 35.00, Ingredients: "Paneer, Yogurt, Spices, Bell Pepper", IsVegetarian: true, SpiceLevel: domain.SpiceMedium},
	{ID: "ITEM-103", Name: "Chicken 65", Category: "Starter", Price: 38.00, Ingredients: "Chicken, Curry Leaves, Spices", IsVegetarian: false, SpiceLevel: domain.SpiceHot},
	{ID: "ITEM-104", Name: "Aloo Tikki Chaat", Category: "Starter", Price: 22.00, Ingredients: "Potato, Chickpeas, Yogurt, Tamarind", IsVegetarian: true, SpiceLevel: domain.SpiceMild},
	{ID: "ITEM-105", Name: "Chicken Seekh Kebab", Category: "Starter", Price: 42.00, Ingredients: "Minced Chicken, Spices, Onion", IsVegetarian: false, SpiceLevel: domain.SpiceMedium},

	// Main course, vegetarian
	{ID: "ITEM-201", Name: "Paneer Butter Masala", Category: "Main Course", Price: 45.00, Ingredients: "Paneer, Tomato, Cream, Butter", IsVegetarian: true, SpiceLevel: domain.SpiceMild},
	{ID: "ITEM-202", Name: "Dal Makhani", Category: "Main Course", Price: 38.00, Ingredients: "Black Lentils, Kidney Beans, Cream", IsVegetarian: true, SpiceLevel: domain.SpiceMild},
	{ID: "ITEM-203", Name: "Palak Paneer", Category: "Main Course", Price: 42.00, Ingredients: "Spinach, Paneer, Spices", IsVegetarian: true, SpiceLevel: domain.SpiceMedium},
	{ID: "ITEM-204", Name: "Malai Kofta", Category: "Main Course", Price: 44.00, Ingredients: "Cottage Cheese, Potato, Cashew Gravy", IsVegetarian: true, SpiceLevel: domain.SpiceMild},
	{ID: "ITEM-205", Name: "Chole Bhature", Category: "Main Course", Price: 40.00, Ingredients: "Chickpeas, Fried Bread, Spices", IsVegetarian: true, SpiceLevel: domain.SpiceMedium},

	// Main course, non-vegetarian
	{ID: "ITEM-301", Name: "Butter Chicken", Category: "Main Course", Price: 52.00, Ingredients: "Chicken, Tomato, Butter, Cream", IsVegetarian: false, SpiceLevel: domain.SpiceMild},
	{ID: "ITEM-302", Name: "Chicken Tikka Masala", Category: "Main Course", Price: 50.00, Ingredients: "Chicken Tikka, Tomato Gravy, Cream", IsVegetarian: false, SpiceLevel: domain.SpiceMedium},
	{ID: "ITEM-303", Name: "Lamb Rogan Josh", Category: "Main Course", Price: 65.00, Ingredients: "Lamb, Yogurt, Kashmiri Spices", IsVegetarian: false, SpiceLevel: domain.SpiceMedium},
	{ID: "ITEM-304", Name: "Fish Curry", Category: "Main Course", Price: 55.00, Ingredients: "Fish, Coconut, Curry Leaves", IsVegetarian: false, SpiceLevel: domain.SpiceHot},
	{ID: "ITEM-305", Name: "Chicken Biryani", Category: "Main Course", Price: 48.00, Ingredients: "Basmati Rice, Chicken, Saffron, Spices", IsVegetarian: false, SpiceLevel: domain.SpiceMedium},

	// Rice and breads
	{ID: "ITEM-401", Name: "Naan", Category: "Bread", Price: 8.00, Ingredients: "Flour, Yogurt, Yeast", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-402", Name: "Garlic Naan", Category: "Bread", Price: 10.00, Ingredients: "Flour, Garlic, Butter", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-403", Name: "Butter Naan", Category: "Bread", Price: 9.00, Ingredients: "Flour, Butter, Milk", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-404", Name: "Tandoori Roti", Category: "Bread", Price: 6.00, Ingredients: "Whole Wheat Flour", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-405", Name: "Jeera Rice", Category: "Rice", Price: 18.00, Ingredients: "Basmati Rice, Cumin Seeds", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-406", Name: "Vegetable Biryani", Category: "Rice", Price: 42.00, Ingredients: "Basmati Rice, Mixed Vegetables, Saffron", IsVegetarian: true, SpiceLevel: domain.SpiceMedium},

	// Desserts
	{ID: "ITEM-501", Name: "Gulab Jamun (2 pcs)", Category: "Dessert", Price: 15.00, Ingredients: "Milk Solids, Sugar Syrup, Cardamom", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-502", Name: "Rasmalai (2 pcs)", Category: "Dessert", Price: 18.00, Ingredients: "Cottage Cheese, Milk, Saffron", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-503", Name: "Kulfi", Category: "Dessert", Price: 20.00, Ingredients: "Milk, Cardamom, Pistachios", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-504", Name: "Gajar Halwa", Category: "Dessert", Price: 22.00, Ingredients: "Carrot, Milk, Ghee, Sugar", IsVegetarian: true, SpiceLevel: domain.SpiceNone},

	// Beverages
	{ID: "ITEM-601", Name: "Masala Chai", Category: "Beverage", Price: 12.00, Ingredients: "Tea, Milk, Spices", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-602", Name: "Mango Lassi", Category: "Beverage", Price: 18.00, Ingredients: "Mango, Yogurt, Sugar", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-603", Name: "Sweet Lassi", Category: "Beverage", Price: 15.00, Ingredients: "Yogurt, Sugar, Cardamom", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
	{ID: "ITEM-604", Name: "Fresh Lime Soda", Category: "Beverage", Price: 12.00, Ingredients: "Lime, Soda, Salt/Sugar", IsVegetarian: true, SpiceLevel: domain.SpiceNone},
}
