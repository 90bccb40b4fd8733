package shoppinglist

import (
	"sort"
	"strings"
)

// Category is one of the fixed grocery store sections.
type Category string

const (
	CategoryProduce     Category = "Produce"
	CategoryDairyEggs   Category = "Dairy & Eggs"
	CategoryMeatSeafood Category = "Meat & Seafood"
	CategoryBakery      Category = "Bakery"
	CategoryPantry      Category = "Pantry"
	CategorySpices      Category = "Spices & Seasonings"
	CategoryFrozen      Category = "Frozen"
	CategoryBeverages   Category = "Beverages"
	CategoryCanned      Category = "Canned & Jarred"
	CategoryCondiments  Category = "Condiments & Sauces"
	CategorySnacks      Category = "Snacks"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category, in shopping-aisle order.
var Categories = []Category{
	CategoryProduce,
	CategoryDairyEggs,
	CategoryMeatSeafood,
	CategoryBakery,
	CategoryPantry,
	CategorySpices,
	CategoryFrozen,
	CategoryBeverages,
	CategoryCanned,
	CategoryCondiments,
	CategorySnacks,
	CategoryOther,
}

var categoryTable = map[string]Category{
	// Produce
	"apple": CategoryProduce, "banana": CategoryProduce,
	"orange": CategoryProduce, "lemon": CategoryProduce,
	"lime": CategoryProduce, "grapefruit": CategoryProduce,
	"avocado": CategoryProduce, "tomato": CategoryProduce,
	"cherry tomatoes": CategoryProduce, "potato": CategoryProduce,
	"sweet potato": CategoryProduce, "onion": CategoryProduce,
	"red onion": CategoryProduce, "green onion": CategoryProduce,
	"shallot": CategoryProduce, "leek": CategoryProduce,
	"garlic": CategoryProduce, "ginger": CategoryProduce,
	"lettuce": CategoryProduce, "romaine lettuce": CategoryProduce,
	"iceberg lettuce": CategoryProduce, "spinach": CategoryProduce,
	"kale": CategoryProduce, "arugula": CategoryProduce,
	"broccoli": CategoryProduce, "cauliflower": CategoryProduce,
	"brussels sprouts": CategoryProduce, "cabbage": CategoryProduce,
	"carrot": CategoryProduce, "celery": CategoryProduce,
	"cucumber": CategoryProduce, "zucchini": CategoryProduce,
	"yellow squash": CategoryProduce, "butternut squash": CategoryProduce,
	"eggplant": CategoryProduce, "bell pepper": CategoryProduce,
	"jalapeno": CategoryProduce, "habanero": CategoryProduce,
	"serrano": CategoryProduce, "poblano": CategoryProduce,
	"mushroom": CategoryProduce, "portobello mushrooms": CategoryProduce,
	"cremini mushrooms": CategoryProduce, "shiitake mushrooms": CategoryProduce,
	"corn": CategoryProduce, "asparagus": CategoryProduce,
	"green beans": CategoryProduce, "peas": CategoryProduce,
	"snap peas": CategoryProduce, "snow peas": CategoryProduce,
	"beets": CategoryProduce, "radishes": CategoryProduce,
	"artichokes": CategoryProduce, "strawberries": CategoryProduce,
	"blueberries": CategoryProduce, "raspberries": CategoryProduce,
	"blackberries": CategoryProduce, "cherries": CategoryProduce,
	"grapes": CategoryProduce, "watermelon": CategoryProduce,
	"cantaloupe": CategoryProduce, "pineapple": CategoryProduce,
	"mango": CategoryProduce, "peach": CategoryProduce,
	"pear": CategoryProduce, "plum": CategoryProduce,
	"kiwi": CategoryProduce, "pomegranate": CategoryProduce,
	"basil": CategoryProduce, "cilantro": CategoryProduce,
	"parsley": CategoryProduce, "mint": CategoryProduce,
	"dill": CategoryProduce, "rosemary": CategoryProduce,
	"thyme": CategoryProduce, "sage": CategoryProduce,
	"lemongrass": CategoryProduce, "chives": CategoryProduce,

	// Dairy & Eggs
	"milk": CategoryDairyEggs, "buttermilk": CategoryDairyEggs,
	"heavy cream": CategoryDairyEggs, "half & half": CategoryDairyEggs,
	"sour cream": CategoryDairyEggs, "creme fraiche": CategoryDairyEggs,
	"yogurt": CategoryDairyEggs, "greek yogurt": CategoryDairyEggs,
	"butter": CategoryDairyEggs, "ghee": CategoryDairyEggs,
	"margarine": CategoryDairyEggs, "cheese": CategoryDairyEggs,
	"cheddar cheese": CategoryDairyEggs, "mozzarella": CategoryDairyEggs,
	"parmesan": CategoryDairyEggs, "feta": CategoryDairyEggs,
	"ricotta": CategoryDairyEggs, "cream cheese": CategoryDairyEggs,
	"cottage cheese": CategoryDairyEggs, "goat cheese": CategoryDairyEggs,
	"blue cheese": CategoryDairyEggs, "gruyere": CategoryDairyEggs,
	"gouda": CategoryDairyEggs, "brie": CategoryDairyEggs,
	"monterey jack": CategoryDairyEggs, "pepper jack": CategoryDairyEggs,
	"halloumi": CategoryDairyEggs, "mascarpone": CategoryDairyEggs,
	"queso fresco": CategoryDairyEggs, "egg": CategoryDairyEggs,
	"egg whites": CategoryDairyEggs, "egg yolks": CategoryDairyEggs,

	// Meat & Seafood
	"chicken": CategoryMeatSeafood, "chicken breast": CategoryMeatSeafood,
	"chicken thighs": CategoryMeatSeafood, "chicken wings": CategoryMeatSeafood,
	"ground chicken": CategoryMeatSeafood, "beef": CategoryMeatSeafood,
	"ground beef": CategoryMeatSeafood, "steak": CategoryMeatSeafood,
	"flank steak": CategoryMeatSeafood, "ribeye steak": CategoryMeatSeafood,
	"sirloin": CategoryMeatSeafood, "pork": CategoryMeatSeafood,
	"ground pork": CategoryMeatSeafood, "pork chops": CategoryMeatSeafood,
	"pork tenderloin": CategoryMeatSeafood, "pork shoulder": CategoryMeatSeafood,
	"pork belly": CategoryMeatSeafood, "bacon": CategoryMeatSeafood,
	"ham": CategoryMeatSeafood, "prosciutto": CategoryMeatSeafood,
	"pancetta": CategoryMeatSeafood, "sausage": CategoryMeatSeafood,
	"chorizo": CategoryMeatSeafood, "pepperoni": CategoryMeatSeafood,
	"salami": CategoryMeatSeafood, "turkey": CategoryMeatSeafood,
	"ground turkey": CategoryMeatSeafood, "lamb": CategoryMeatSeafood,
	"ground lamb": CategoryMeatSeafood, "salmon": CategoryMeatSeafood,
	"tuna": CategoryMeatSeafood, "cod": CategoryMeatSeafood,
	"tilapia": CategoryMeatSeafood, "halibut": CategoryMeatSeafood,
	"shrimp": CategoryMeatSeafood, "scallops": CategoryMeatSeafood,
	"crab": CategoryMeatSeafood, "lobster": CategoryMeatSeafood,
	"mussels": CategoryMeatSeafood, "clams": CategoryMeatSeafood,
	"oysters": CategoryMeatSeafood, "calamari": CategoryMeatSeafood,
	"anchovies": CategoryMeatSeafood, "sardines": CategoryMeatSeafood,

	// Bakery
	"bread": CategoryBakery, "sourdough bread": CategoryBakery,
	"baguette": CategoryBakery, "ciabatta": CategoryBakery,
	"pita bread": CategoryBakery, "naan": CategoryBakery,
	"tortillas": CategoryBakery, "flour tortillas": CategoryBakery,
	"corn tortillas": CategoryBakery, "bagels": CategoryBakery,
	"english muffins": CategoryBakery, "hamburger buns": CategoryBakery,
	"hot dog buns": CategoryBakery, "croissant": CategoryBakery,

	// Pantry
	"flour": CategoryPantry, "bread flour": CategoryPantry,
	"whole wheat flour": CategoryPantry, "almond flour": CategoryPantry,
	"coconut flour": CategoryPantry, "cake flour": CategoryPantry,
	"sugar": CategoryPantry, "brown sugar": CategoryPantry,
	"powdered sugar": CategoryPantry, "honey": CategoryPantry,
	"maple syrup": CategoryPantry, "agave nectar": CategoryPantry,
	"corn syrup": CategoryPantry, "baking soda": CategoryPantry,
	"baking powder": CategoryPantry, "yeast": CategoryPantry,
	"cornstarch": CategoryPantry, "cornmeal": CategoryPantry,
	"cocoa powder": CategoryPantry, "chocolate chips": CategoryPantry,
	"dark chocolate": CategoryPantry, "vanilla extract": CategoryPantry,
	"olive oil": CategoryPantry, "vegetable oil": CategoryPantry,
	"canola oil": CategoryPantry, "coconut oil": CategoryPantry,
	"sesame oil": CategoryPantry, "avocado oil": CategoryPantry,
	"peanut oil": CategoryPantry, "cooking spray": CategoryPantry,
	"rice": CategoryPantry, "brown rice": CategoryPantry,
	"basmati rice": CategoryPantry, "jasmine rice": CategoryPantry,
	"arborio rice": CategoryPantry, "wild rice": CategoryPantry,
	"quinoa": CategoryPantry, "oats": CategoryPantry,
	"steel-cut oats": CategoryPantry, "couscous": CategoryPantry,
	"barley": CategoryPantry, "farro": CategoryPantry,
	"bulgur": CategoryPantry, "polenta": CategoryPantry,
	"pasta": CategoryPantry, "spaghetti": CategoryPantry,
	"penne": CategoryPantry, "fettuccine": CategoryPantry,
	"linguine": CategoryPantry, "rigatoni": CategoryPantry,
	"macaroni": CategoryPantry, "orzo": CategoryPantry,
	"lasagna noodles": CategoryPantry, "egg noodles": CategoryPantry,
	"rice noodles": CategoryPantry, "ramen noodles": CategoryPantry,
	"soba noodles": CategoryPantry, "udon noodles": CategoryPantry,
	"noodles": CategoryPantry, "breadcrumbs": CategoryPantry,
	"panko breadcrumbs": CategoryPantry, "lentils": CategoryPantry,
	"split peas": CategoryPantry, "peanut butter": CategoryPantry,
	"almond butter": CategoryPantry, "almonds": CategoryPantry,
	"walnuts": CategoryPantry, "pecans": CategoryPantry,
	"cashews": CategoryPantry, "pistachios": CategoryPantry,
	"pine nuts": CategoryPantry, "peanuts": CategoryPantry,
	"hazelnuts": CategoryPantry, "macadamia nuts": CategoryPantry,
	"chia seeds": CategoryPantry, "flaxseed": CategoryPantry,
	"pumpkin seeds": CategoryPantry, "sunflower seeds": CategoryPantry,
	"sesame seeds": CategoryPantry, "shredded coconut": CategoryPantry,
	"raisins": CategoryPantry, "dates": CategoryPantry,
	"gelatin": CategoryPantry, "nutritional yeast": CategoryPantry,

	// Spices & Seasonings
	"salt": CategorySpices, "salt & pepper": CategorySpices,
	"black pepper": CategorySpices, "white pepper": CategorySpices,
	"cayenne pepper": CategorySpices, "red pepper flakes": CategorySpices,
	"chili powder": CategorySpices, "paprika": CategorySpices,
	"smoked paprika": CategorySpices, "cumin": CategorySpices,
	"coriander": CategorySpices, "turmeric": CategorySpices,
	"ground ginger": CategorySpices, "cinnamon": CategorySpices,
	"nutmeg": CategorySpices, "cloves": CategorySpices,
	"allspice": CategorySpices, "cardamom": CategorySpices,
	"curry powder": CategorySpices, "garam masala": CategorySpices,
	"italian seasoning": CategorySpices, "taco seasoning": CategorySpices,
	"oregano": CategorySpices, "bay leaves": CategorySpices,
	"saffron": CategorySpices, "star anise": CategorySpices,
	"fennel seeds": CategorySpices, "mustard seeds": CategorySpices,
	"poppy seeds": CategorySpices, "garlic powder": CategorySpices,
	"onion powder": CategorySpices, "tarragon": CategorySpices,

	// Frozen
	"frozen peas": CategoryFrozen, "frozen corn": CategoryFrozen,
	"frozen spinach": CategoryFrozen, "frozen berries": CategoryFrozen,
	"ice cream": CategoryFrozen, "frozen pizza": CategoryFrozen,
	"puff pastry": CategoryFrozen, "edamame": CategoryFrozen,

	// Beverages
	"coffee": CategoryBeverages, "instant coffee": CategoryBeverages,
	"espresso powder": CategoryBeverages, "tea": CategoryBeverages,
	"green tea": CategoryBeverages, "orange juice": CategoryBeverages,
	"apple juice": CategoryBeverages, "sparkling water": CategoryBeverages,
	"white wine": CategoryBeverages, "red wine": CategoryBeverages,
	"beer": CategoryBeverages, "sake": CategoryBeverages,

	// Canned & Jarred
	"chicken broth": CategoryCanned, "beef broth": CategoryCanned,
	"vegetable broth": CategoryCanned, "bone broth": CategoryCanned,
	"bouillon": CategoryCanned, "tomato paste": CategoryCanned,
	"tomato sauce": CategoryCanned, "tomato puree": CategoryCanned,
	"crushed tomatoes": CategoryCanned, "diced tomatoes": CategoryCanned,
	"sun-dried tomatoes": CategoryCanned, "black beans": CategoryCanned,
	"pinto beans": CategoryCanned, "kidney beans": CategoryCanned,
	"cannellini beans": CategoryCanned, "white beans": CategoryCanned,
	"chickpeas": CategoryCanned, "coconut milk": CategoryCanned,
	"coconut cream": CategoryCanned, "condensed milk": CategoryCanned,
	"evaporated milk": CategoryCanned, "olives": CategoryCanned,
	"kalamata olives": CategoryCanned, "green olives": CategoryCanned,
	"black olives": CategoryCanned, "capers": CategoryCanned,
	"artichoke hearts": CategoryCanned, "pumpkin puree": CategoryCanned,

	// Condiments & Sauces
	"ketchup": CategoryCondiments, "mustard": CategoryCondiments,
	"dijon mustard": CategoryCondiments, "whole grain mustard": CategoryCondiments,
	"mayonnaise": CategoryCondiments, "soy sauce": CategoryCondiments,
	"fish sauce": CategoryCondiments, "oyster sauce": CategoryCondiments,
	"hoisin sauce": CategoryCondiments, "sriracha": CategoryCondiments,
	"gochujang": CategoryCondiments, "miso paste": CategoryCondiments,
	"mirin": CategoryCondiments, "rice wine": CategoryCondiments,
	"worcestershire sauce": CategoryCondiments, "hot sauce": CategoryCondiments,
	"barbecue sauce": CategoryCondiments, "ranch dressing": CategoryCondiments,
	"salsa": CategoryCondiments, "pesto": CategoryCondiments,
	"marinara sauce": CategoryCondiments, "tahini": CategoryCondiments,
	"hummus": CategoryCondiments, "balsamic vinegar": CategoryCondiments,
	"apple cider vinegar": CategoryCondiments, "rice vinegar": CategoryCondiments,
	"red wine vinegar": CategoryCondiments, "white wine vinegar": CategoryCondiments,
	"white vinegar": CategoryCondiments, "sherry vinegar": CategoryCondiments,
	"harissa": CategoryCondiments, "curry paste": CategoryCondiments,
	"wasabi": CategoryCondiments, "kimchi": CategoryCondiments,

	// Snacks
	"crackers": CategorySnacks, "tortilla chips": CategorySnacks,
	"potato chips": CategorySnacks, "popcorn": CategorySnacks,
	"pretzels": CategorySnacks, "granola": CategorySnacks,
	"granola bars": CategorySnacks, "trail mix": CategorySnacks,

	// Other
	"tofu": CategoryOther, "silken tofu": CategoryOther,
	"tempeh": CategoryOther, "seitan": CategoryOther,
	"nori": CategoryOther,
}

// categoryKeysByLength caches the table keys sorted longest-first so the
// substring pass prefers the most specific match ("cheddar cheese" before
// "cheese").
var categoryKeysByLength = func() []string {
	keys := make([]string, 0, len(categoryTable))
	for k := range categoryTable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// Categorize assigns a grocery category to an ingredient name, preferably a
// canonical key. Exact table match first, then longest-key substring match,
// else Other.
func Categorize(name string) Category {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return CategoryOther
	}
	if cat, ok := categoryTable[key]; ok {
		return cat
	}
	for _, tableKey := range categoryKeysByLength {
		if strings.Contains(key, tableKey) {
			return categoryTable[tableKey]
		}
	}
	return CategoryOther
}

// ValidCategory reports whether a string names one of the closed category
// set, for validating externally supplied overrides.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}
