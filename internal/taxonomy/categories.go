package taxonomy

var defaultGroups = []Group{
	{Primary: "Dairy & Dairy Alternatives", Secondaries: []string{
		"Milk (Full Cream, Toned, Skimmed)", "Flavoured Milk", "Butter", "Ghee",
		"Cheese (Processed, Mozzarella, Cheddar)", "Paneer", "Cream", "Yogurt / Curd",
		"Greek Yogurt", "Flavoured Yogurt", "Lassi", "Buttermilk", "Milkshakes",
		"Ice Cream", "Frozen Yogurt", "Gelato", "Dairy-Free Milk (Almond, Soy, Oat)",
		"Vegan Cheese",
	}},
	{Primary: "Frozen Foods", Secondaries: []string{
		"Ice Cream", "Frozen Dessert", "Popsicles", "Frozen Vegetables",
		"Frozen Fries", "Frozen Snacks (Nuggets, Patties)", "Frozen Ready Meals",
		"Frozen Pizza", "Frozen Paratha",
	}},
	{Primary: "Bakery & Breads", Secondaries: []string{
		"White Bread", "Brown Bread", "Multigrain Bread", "Buns", "Pav",
		"Burger Buns", "Pizza Base", "Cakes", "Pastries", "Muffins", "Cookies",
		"Rusks", "Croissants", "Donuts", "Brownies",
	}},
	{Primary: "Breakfast Foods", Secondaries: []string{
		"Cornflakes", "Chocolate Cereals", "Oats", "Flavoured Oats", "Granola",
		"Muesli", "Pancake Mix", "Waffle Mix", "Breakfast Bars", "Peanut Butter",
		"Jams", "Honey",
	}},
	{Primary: "Snacks & Savouries", Secondaries: []string{
		"Potato Chips", "Nachos", "Extruded Snacks (Kurkure type)", "Popcorn",
		"Namkeen", "Bhujia", "Mixture", "Roasted Nuts", "Salted Nuts", "Trail Mix",
		"Protein Snacks",
	}},
	{Primary: "Beverages", Secondaries: []string{
		"Soft Drinks", "Cola", "Energy Drinks", "Sports Drinks", "Fruit Juice",
		"Juice Drinks", "Flavoured Water", "Coconut Water", "Iced Tea", "Coffee",
		"Instant Coffee", "Tea", "Green Tea", "Milk-Based Drinks", "Beer", "Wine",
		"Spirits", "RTD Cocktails",
	}},
	{Primary: "Confectionery & Sweets", Secondaries: []string{
		"Milk Chocolate", "Dark Chocolate", "White Chocolate", "Candy", "Toffees",
		"Chewing Gum", "Lollipops", "Fudge", "Indian Sweets (Ladoo, Barfi)",
		"Chocolate Spread",
	}},
	{Primary: "Ready-to-Eat / Convenience Foods", Secondaries: []string{
		"Instant Noodles", "Cup Noodles", "Ready Meals", "Pasta", "Mac & Cheese",
		"Soup Packets", "Ready Gravies", "Ready Rice", "Instant Upma/Poha", "Meal Kits",
	}},
	{Primary: "Sauces, Spreads & Condiments", Secondaries: []string{
		"Tomato Ketchup", "Chili Sauce", "Soy Sauce", "Mayonnaise", "Salad Dressing",
		"Mustard", "Pickles", "Vinegar", "Chutney", "Pasta Sauce",
	}},
	{Primary: "Staples & Grains", Secondaries: []string{
		"Rice", "Basmati Rice", "Brown Rice", "Wheat Flour", "Multigrain Flour",
		"Maida", "Suji", "Besan", "Pulses", "Lentils", "Quinoa", "Millets",
		"Pasta", "Noodles",
	}},
	{Primary: "Health & Nutrition Products", Secondaries: []string{
		"Protein Powder", "Whey Protein", "Mass Gainer", "Meal Replacement",
		"Nutrition Bars", "Keto Products", "Sugar-Free Products",
		"Diabetic-Friendly Products", "Gluten-Free Products",
	}},
	{Primary: "Baby & Kids Food", Secondaries: []string{
		"Infant Formula", "Baby Cereal", "Baby Puree", "Kids Snacks", "Kids Drinks",
	}},
	{Primary: "Meat, Poultry & Seafood", Secondaries: []string{
		"Processed Chicken", "Sausages", "Salami", "Frozen Meat",
		"Canned Tuna", "Fish Fillets",
	}},
	{Primary: "Plant-Based & Vegan Products", Secondaries: []string{
		"Vegan Meat", "Plant-Based Nuggets", "Vegan Sausage", "Tofu",
		"Tempeh", "Vegan Ice Cream",
	}},
}

// defaultRelated covers only a handful of secondaries on purpose.
var defaultRelated = map[string][]string{
	"Ice Cream":       {"Frozen Yogurt", "Gelato", "Vegan Ice Cream", "Frozen Dessert"},
	"Soft Drinks":     {"Flavoured Water", "Fruit Juice", "Coconut Water", "Iced Tea"},
	"Cola":            {"Flavoured Water", "Fruit Juice", "Iced Tea"},
	"Milk Chocolate":  {"Dark Chocolate", "Chocolate Spread"},
	"Potato Chips":    {"Popcorn", "Roasted Nuts", "Trail Mix", "Protein Snacks"},
	"Energy Drinks":   {"Sports Drinks", "Coffee", "Green Tea"},
	"White Bread":     {"Multigrain Bread", "Brown Bread"},
	"Instant Noodles": {"Pasta", "Oats"},
	"White Chocolate": {"Dark Chocolate"},
	"Candy":           {"Dark Chocolate", "Fudge"},
}
