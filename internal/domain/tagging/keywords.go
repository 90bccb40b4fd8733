// Package tagging classifies a recipe's cuisine, meal type and dietary
// attributes from its title, description and ingredient names using static
// keyword tables and simple additive scoring. Pure and side-effect free.
package tagging

// cuisineDef scores one cuisine. Title hits weigh 3, distinct ingredient
// keyword hits weigh 1.
type cuisineDef struct {
	Name               string
	TitleKeywords      []string
	IngredientKeywords []string
}

// cuisineTable order doubles as the tie-break order for equal scores.
var cuisineTable = []cuisineDef{
	{
		Name:               "Italian",
		TitleKeywords:      []string{"italian", "pasta", "risotto", "carbonara", "lasagna", "parmigiana", "pizza", "bolognese", "caprese"},
		IngredientKeywords: []string{"parmesan", "mozzarella", "basil", "oregano", "prosciutto", "pancetta", "marinara", "pesto", "ricotta", "balsamic", "arborio"},
	},
	{
		Name:               "Mexican",
		TitleKeywords:      []string{"mexican", "taco", "burrito", "enchilada", "quesadilla", "fajita", "carnitas", "pozole"},
		IngredientKeywords: []string{"tortilla", "cilantro", "jalapeno", "cumin", "salsa", "chipotle", "queso", "avocado", "lime", "poblano"},
	},
	{
		Name:               "Chinese",
		TitleKeywords:      []string{"chinese", "stir-fry", "stir fry", "kung pao", "lo mein", "fried rice", "szechuan", "chow mein"},
		IngredientKeywords: []string{"soy sauce", "hoisin", "oyster sauce", "sesame oil", "ginger", "rice vinegar", "scallion", "five-spice", "bok choy"},
	},
	{
		Name:               "Japanese",
		TitleKeywords:      []string{"japanese", "sushi", "ramen", "teriyaki", "tempura", "donburi", "katsu"},
		IngredientKeywords: []string{"miso", "mirin", "sake", "nori", "dashi", "wasabi", "soba", "udon", "panko"},
	},
	{
		Name:               "Indian",
		TitleKeywords:      []string{"indian", "curry", "tikka", "masala", "biryani", "dal", "tandoori", "korma"},
		IngredientKeywords: []string{"garam masala", "turmeric", "cumin", "coriander", "cardamom", "ghee", "curry", "naan", "basmati", "paneer"},
	},
	{
		Name:               "Thai",
		TitleKeywords:      []string{"thai", "pad thai", "tom yum", "satay", "larb"},
		IngredientKeywords: []string{"fish sauce", "coconut milk", "lemongrass", "curry paste", "lime", "peanut", "thai basil"},
	},
	{
		Name:               "French",
		TitleKeywords:      []string{"french", "ratatouille", "coq au vin", "quiche", "crepe", "gratin", "bourguignon", "souffle"},
		IngredientKeywords: []string{"butter", "shallot", "tarragon", "gruyere", "creme fraiche", "white wine", "dijon", "herbes de provence"},
	},
	{
		Name:               "Mediterranean",
		TitleKeywords:      []string{"mediterranean", "greek", "falafel", "gyro", "souvlaki", "tabbouleh"},
		IngredientKeywords: []string{"feta", "olive", "hummus", "tahini", "za'atar", "chickpea", "cucumber", "kalamata", "oregano"},
	},
	{
		Name:               "American",
		TitleKeywords:      []string{"american", "burger", "bbq", "barbecue", "meatloaf", "mac and cheese", "sloppy joe", "pot pie"},
		IngredientKeywords: []string{"cheddar", "bacon", "ketchup", "ranch", "barbecue sauce", "hamburger bun"},
	},
	{
		Name:               "Korean",
		TitleKeywords:      []string{"korean", "bibimbap", "bulgogi", "kimchi", "japchae"},
		IngredientKeywords: []string{"gochujang", "kimchi", "sesame oil", "scallion", "gochugaru"},
	},
	{
		Name:               "Vietnamese",
		TitleKeywords:      []string{"vietnamese", "pho", "banh mi", "bun cha"},
		IngredientKeywords: []string{"fish sauce", "rice noodles", "star anise", "bean sprouts", "hoisin"},
	},
	{
		Name:               "Middle Eastern",
		TitleKeywords:      []string{"middle eastern", "shawarma", "kebab", "shakshuka", "mujadara"},
		IngredientKeywords: []string{"tahini", "sumac", "harissa", "pita", "za'atar", "pomegranate"},
	},
}

// mealTypeDef scores one meal type. Title hits weigh 5, description hits 2.
type mealTypeDef struct {
	Name                string
	TitleKeywords       []string
	DescriptionKeywords []string
}

var mealTypeTable = []mealTypeDef{
	{
		Name:                "Breakfast",
		TitleKeywords:       []string{"breakfast", "pancake", "waffle", "omelet", "omelette", "frittata", "french toast", "oatmeal", "granola", "scrambled"},
		DescriptionKeywords: []string{"morning", "brunch", "breakfast", "start your day"},
	},
	{
		Name:                "Lunch",
		TitleKeywords:       []string{"lunch", "sandwich", "wrap", "panini", "club"},
		DescriptionKeywords: []string{"lunch", "midday", "lunchbox", "light meal"},
	},
	{
		Name:                "Dinner",
		TitleKeywords:       []string{"dinner", "roast", "casserole", "stew", "braised", "pot roast", "sheet pan"},
		DescriptionKeywords: []string{"dinner", "weeknight", "main course", "supper", "hearty"},
	},
	{
		Name:                "Dessert",
		TitleKeywords:       []string{"dessert", "cake", "cookie", "brownie", "pie", "pudding", "ice cream", "tart", "cheesecake", "cupcake"},
		DescriptionKeywords: []string{"dessert", "sweet", "treat", "indulgent"},
	},
	{
		Name:                "Appetizer",
		TitleKeywords:       []string{"appetizer", "starter", "bruschetta", "crostini", "deviled"},
		DescriptionKeywords: []string{"appetizer", "starter", "hors d'oeuvre", "party"},
	},
	{
		Name:                "Side Dish",
		TitleKeywords:       []string{"side", "slaw", "mashed", "roasted vegetables", "pilaf"},
		DescriptionKeywords: []string{"side dish", "accompaniment", "goes well with"},
	},
	{
		Name:                "Snack",
		TitleKeywords:       []string{"snack", "bites", "dip", "popcorn", "energy balls", "bars"},
		DescriptionKeywords: []string{"snack", "snacking", "on the go", "munch"},
	},
	{
		Name:                "Beverage",
		TitleKeywords:       []string{"smoothie", "shake", "latte", "lemonade", "cocktail", "mocktail", "punch"},
		DescriptionKeywords: []string{"drink", "refreshing", "sip", "beverage"},
	},
}

// Dietary keyword classes. Each label is derived from presence/absence of
// these classes across the recipe's ingredient names.
var (
	meatKeywords = []string{
		"chicken", "beef", "pork", "bacon", "ham", "turkey", "lamb",
		"sausage", "prosciutto", "pancetta", "chorizo", "pepperoni",
		"salami", "steak", "veal", "duck", "meatball", "brisket",
	}
	fishKeywords = []string{
		"salmon", "tuna", "cod", "tilapia", "halibut", "shrimp", "prawn",
		"scallop", "crab", "lobster", "anchovy", "anchovies", "sardine",
		"mussel", "clam", "oyster", "calamari", "squid", "fish",
	}
	animalBrothKeywords = []string{
		"chicken broth", "chicken stock", "beef broth", "beef stock",
		"bone broth", "chicken bouillon", "beef bouillon",
	}
	dairyKeywords = []string{
		"milk", "butter", "cheese", "cream", "yogurt", "ghee",
		"mozzarella", "parmesan", "cheddar", "feta", "ricotta",
		"mascarpone", "halloumi", "gruyere", "brie", "buttermilk",
	}
	eggKeywords = []string{"egg", "eggs", "egg white", "egg yolk", "mayonnaise"}

	glutenKeywords = []string{
		"flour", "bread", "pasta", "spaghetti", "penne", "fettuccine",
		"linguine", "noodle", "tortilla", "breadcrumb", "panko", "barley",
		"couscous", "cracker", "beer", "soy sauce", "wheat", "bun",
		"bagel", "pita", "naan", "orzo", "farro", "bulgur",
	}
	nutKeywords = []string{
		"almond", "walnut", "pecan", "cashew", "pistachio", "peanut",
		"hazelnut", "macadamia", "pine nut", "nut",
	}
	highCarbKeywords = []string{
		"flour", "sugar", "rice", "pasta", "bread", "potato", "noodle",
		"oats", "honey", "maple syrup", "corn", "banana", "tortilla",
		"quinoa", "couscous",
	}
	proteinKeywords = []string{
		"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna",
		"shrimp", "egg", "tofu", "tempeh", "seitan", "lentil", "chickpea",
		"bean", "yogurt", "cottage cheese", "quinoa", "steak",
	}
)

// Dietary label names, in emission order.
const (
	LabelVegetarian  = "Vegetarian"
	LabelVegan       = "Vegan"
	LabelGlutenFree  = "Gluten-Free"
	LabelDairyFree   = "Dairy-Free"
	LabelNutFree     = "Nut-Free"
	LabelHighProtein = "High-Protein"
	LabelLowSodium   = "Low-Sodium"
	LabelKeto        = "Keto"
	LabelLowCarb     = "Low-Carb"
)

// CuisineNames returns every cuisine the tagger can emit, in table order.
func CuisineNames() []string {
	names := make([]string, len(cuisineTable))
	for i, c := range cuisineTable {
		names[i] = c.Name
	}
	return names
}

// MealTypeNames returns every meal type the tagger can emit, in table order.
func MealTypeNames() []string {
	names := make([]string, len(mealTypeTable))
	for i, m := range mealTypeTable {
		names[i] = m.Name
	}
	return names
}

// DietaryLabelNames returns every dietary label the tagger can emit.
func DietaryLabelNames() []string {
	return []string{
		LabelVegetarian, LabelVegan, LabelGlutenFree, LabelDairyFree,
		LabelNutFree, LabelHighProtein, LabelLowSodium, LabelKeto, LabelLowCarb,
	}
}
