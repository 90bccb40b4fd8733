package ingredient

import "strings"

// FamilyRule collapses the many textual variants of one ingredient (brands,
// prep states, sub-varieties) onto a single canonical/display pair.
type FamilyRule struct {
	Pattern   string
	Canonical string
	Display   string
}

// familyRules is evaluated top to bottom; the first matching rule wins and
// no further rules are consulted. Order is load-bearing: more specific
// patterns ("rice vinegar", "cream cheese") must precede the generic words
// they contain ("rice", "cream").
var familyRules = []FamilyRule{
	// Cheeses — specific varieties first so they keep their own identity.
	{"cream cheese", "cream cheese", "Cream cheese"},
	{"cottage cheese", "cottage cheese", "Cottage cheese"},
	{"goat cheese", "goat cheese", "Goat cheese"},
	{"blue cheese", "blue cheese", "Blue cheese"},
	{"cheddar", "cheddar cheese", "Cheddar cheese"},
	{"mozzarella", "mozzarella", "Mozzarella"},
	{"parmesan", "parmesan", "Parmesan"},
	{"parmigiano", "parmesan", "Parmesan"},
	{"feta", "feta", "Feta"},
	{"ricotta", "ricotta", "Ricotta"},
	{"gruyere", "gruyere", "Gruyère"},
	{"gouda", "gouda", "Gouda"},
	{"brie", "brie", "Brie"},
	{"monterey jack", "monterey jack", "Monterey Jack"},
	{"pepper jack", "pepper jack", "Pepper Jack"},
	{"halloumi", "halloumi", "Halloumi"},
	{"mascarpone", "mascarpone", "Mascarpone"},
	{"queso fresco", "queso fresco", "Queso fresco"},
	{"cheese", "cheese", "Cheese"},

	// Alliums.
	{"green onion", "green onion", "Green onions"},
	{"spring onion", "green onion", "Green onions"},
	{"scallion", "green onion", "Green onions"},
	{"red onion", "red onion", "Red onion"},
	{"shallot", "shallot", "Shallots"},
	{"leek", "leek", "Leeks"},
	{"garlic powder", "garlic powder", "Garlic powder"},
	{"garlic", "garlic", "Garlic"},
	{"chive", "chives", "Chives"},
	{"onion powder", "onion powder", "Onion powder"},
	{"onion", "onion", "Onion"},

	// Dairy.
	{"heavy cream", "heavy cream", "Heavy cream"},
	{"heavy whipping cream", "heavy cream", "Heavy cream"},
	{"whipping cream", "heavy cream", "Heavy cream"},
	{"half and half", "half & half", "Half & half"},
	{"half-and-half", "half & half", "Half & half"},
	{"sour cream", "sour cream", "Sour cream"},
	{"creme fraiche", "creme fraiche", "Crème fraîche"},
	{"buttermilk", "buttermilk", "Buttermilk"},
	{"condensed milk", "condensed milk", "Condensed milk"},
	{"evaporated milk", "evaporated milk", "Evaporated milk"},
	{"coconut milk", "coconut milk", "Coconut milk"},
	{"almond milk", "almond milk", "Almond milk"},
	{"oat milk", "oat milk", "Oat milk"},
	{"soy milk", "soy milk", "Soy milk"},
	{"milk", "milk", "Milk"},
	{"greek yogurt", "greek yogurt", "Greek yogurt"},
	{"yogurt", "yogurt", "Yogurt"},
	{"yoghurt", "yogurt", "Yogurt"},
	{"ghee", "ghee", "Ghee"},
	{"margarine", "margarine", "Margarine"},
	// Nut butters must outrank plain butter.
	{"peanut butter", "peanut butter", "Peanut butter"},
	{"almond butter", "almond butter", "Almond butter"},
	{"cashew butter", "cashew butter", "Cashew butter"},
	{"apple butter", "apple butter", "Apple butter"},
	{"butter", "butter", "Butter"},

	// Oils.
	{"extra virgin olive oil", "olive oil", "Olive oil"},
	{"olive oil", "olive oil", "Olive oil"},
	{"vegetable oil", "vegetable oil", "Vegetable oil"},
	{"canola oil", "canola oil", "Canola oil"},
	{"coconut oil", "coconut oil", "Coconut oil"},
	{"sesame oil", "sesame oil", "Sesame oil"},
	{"avocado oil", "avocado oil", "Avocado oil"},
	{"peanut oil", "peanut oil", "Peanut oil"},
	{"sunflower oil", "sunflower oil", "Sunflower oil"},
	{"cooking spray", "cooking spray", "Cooking spray"},

	// Flours & baking. Tortillas first: they contain "flour" and "corn" but
	// are a bakery item, not a baking staple.
	{"flour tortilla", "flour tortillas", "Flour tortillas"},
	{"corn tortilla", "corn tortillas", "Corn tortillas"},
	{"tortilla", "tortillas", "Tortillas"},
	{"all-purpose flour", "flour", "Flour"},
	{"all purpose flour", "flour", "Flour"},
	{"plain flour", "flour", "Flour"},
	{"bread flour", "bread flour", "Bread flour"},
	{"whole wheat flour", "whole wheat flour", "Whole wheat flour"},
	{"almond flour", "almond flour", "Almond flour"},
	{"coconut flour", "coconut flour", "Coconut flour"},
	{"cake flour", "cake flour", "Cake flour"},
	{"self-rising flour", "self-rising flour", "Self-rising flour"},
	{"cornstarch", "cornstarch", "Cornstarch"},
	{"corn starch", "cornstarch", "Cornstarch"},
	{"baking soda", "baking soda", "Baking soda"},
	{"baking powder", "baking powder", "Baking powder"},
	{"nutritional yeast", "nutritional yeast", "Nutritional yeast"},
	{"active dry yeast", "yeast", "Yeast"},
	{"instant yeast", "yeast", "Yeast"},
	{"yeast", "yeast", "Yeast"},
	{"cocoa powder", "cocoa powder", "Cocoa powder"},
	{"cocoa", "cocoa powder", "Cocoa powder"},
	{"chocolate chip", "chocolate chips", "Chocolate chips"},
	{"dark chocolate", "dark chocolate", "Dark chocolate"},
	{"vanilla extract", "vanilla extract", "Vanilla extract"},
	{"vanilla", "vanilla extract", "Vanilla extract"},
	{"flour", "flour", "Flour"},

	// Sugars & sweeteners.
	{"brown sugar", "brown sugar", "Brown sugar"},
	{"powdered sugar", "powdered sugar", "Powdered sugar"},
	{"confectioners sugar", "powdered sugar", "Powdered sugar"},
	{"confectioners' sugar", "powdered sugar", "Powdered sugar"},
	{"icing sugar", "powdered sugar", "Powdered sugar"},
	{"granulated sugar", "sugar", "Sugar"},
	{"caster sugar", "sugar", "Sugar"},
	{"maple syrup", "maple syrup", "Maple syrup"},
	{"honey", "honey", "Honey"},
	{"agave", "agave nectar", "Agave nectar"},
	{"corn syrup", "corn syrup", "Corn syrup"},
	{"sugar", "sugar", "Sugar"},

	// Tomatoes.
	{"sun-dried tomato", "sun-dried tomatoes", "Sun-dried tomatoes"},
	{"sun dried tomato", "sun-dried tomatoes", "Sun-dried tomatoes"},
	{"tomato paste", "tomato paste", "Tomato paste"},
	{"tomato sauce", "tomato sauce", "Tomato sauce"},
	{"tomato puree", "tomato puree", "Tomato purée"},
	{"crushed tomato", "crushed tomatoes", "Crushed tomatoes"},
	{"diced tomato", "diced tomatoes", "Diced tomatoes"},
	{"cherry tomato", "cherry tomatoes", "Cherry tomatoes"},
	{"grape tomato", "cherry tomatoes", "Cherry tomatoes"},
	{"roma tomato", "tomato", "Tomatoes"},
	{"plum tomato", "tomato", "Tomatoes"},
	{"tomato", "tomato", "Tomatoes"},

	// Eggs. Egg noodles must outrank the bare egg rule.
	{"egg noodle", "egg noodles", "Egg noodles"},
	{"egg white", "egg whites", "Egg whites"},
	{"egg yolk", "egg yolks", "Egg yolks"},
	{"egg", "egg", "Eggs"},

	// Broths & stocks — before the proteins so "chicken broth" never
	// collapses to "chicken".
	{"chicken broth", "chicken broth", "Chicken broth"},
	{"chicken stock", "chicken broth", "Chicken broth"},
	{"chicken bouillon", "bouillon", "Bouillon"},
	{"beef broth", "beef broth", "Beef broth"},
	{"beef stock", "beef broth", "Beef broth"},
	{"vegetable broth", "vegetable broth", "Vegetable broth"},
	{"vegetable stock", "vegetable broth", "Vegetable broth"},
	{"bone broth", "bone broth", "Bone broth"},
	{"bouillon", "bouillon", "Bouillon"},

	// Proteins by type.
	{"chicken breast", "chicken breast", "Chicken breasts"},
	{"chicken thigh", "chicken thighs", "Chicken thighs"},
	{"chicken wing", "chicken wings", "Chicken wings"},
	{"ground chicken", "ground chicken", "Ground chicken"},
	{"rotisserie chicken", "chicken", "Chicken"},
	{"chicken", "chicken", "Chicken"},
	{"ground beef", "ground beef", "Ground beef"},
	{"beef chuck", "beef", "Beef"},
	{"flank steak", "flank steak", "Flank steak"},
	{"ribeye", "ribeye steak", "Ribeye steak"},
	{"sirloin", "sirloin", "Sirloin"},
	{"steak", "steak", "Steak"},
	{"beef", "beef", "Beef"},
	{"ground turkey", "ground turkey", "Ground turkey"},
	{"turkey", "turkey", "Turkey"},
	{"ground pork", "ground pork", "Ground pork"},
	{"pork tenderloin", "pork tenderloin", "Pork tenderloin"},
	{"pork chop", "pork chops", "Pork chops"},
	{"pork shoulder", "pork shoulder", "Pork shoulder"},
	{"pork belly", "pork belly", "Pork belly"},
	{"prosciutto", "prosciutto", "Prosciutto"},
	{"pancetta", "pancetta", "Pancetta"},
	{"bacon", "bacon", "Bacon"},
	{"ham", "ham", "Ham"},
	{"pork", "pork", "Pork"},
	{"ground lamb", "ground lamb", "Ground lamb"},
	{"lamb", "lamb", "Lamb"},
	{"sausage", "sausage", "Sausage"},
	{"chorizo", "chorizo", "Chorizo"},
	{"pepperoni", "pepperoni", "Pepperoni"},
	{"salami", "salami", "Salami"},

	// Citrus.
	{"lemon juice", "lemon juice", "Lemon juice"},
	{"lemon zest", "lemon zest", "Lemon zest"},
	{"lemon", "lemon", "Lemons"},
	{"lime juice", "lime juice", "Lime juice"},
	{"lime zest", "lime zest", "Lime zest"},
	{"lime", "lime", "Limes"},
	{"orange juice", "orange juice", "Orange juice"},
	{"orange zest", "orange zest", "Orange zest"},
	{"orange", "orange", "Oranges"},
	{"grapefruit", "grapefruit", "Grapefruit"},

	// Vinegars.
	{"balsamic vinegar", "balsamic vinegar", "Balsamic vinegar"},
	{"balsamic", "balsamic vinegar", "Balsamic vinegar"},
	{"apple cider vinegar", "apple cider vinegar", "Apple cider vinegar"},
	{"cider vinegar", "apple cider vinegar", "Apple cider vinegar"},
	{"rice vinegar", "rice vinegar", "Rice vinegar"},
	{"rice wine vinegar", "rice vinegar", "Rice vinegar"},
	{"red wine vinegar", "red wine vinegar", "Red wine vinegar"},
	{"white wine vinegar", "white wine vinegar", "White wine vinegar"},
	{"white vinegar", "white vinegar", "White vinegar"},
	{"distilled vinegar", "white vinegar", "White vinegar"},
	{"sherry vinegar", "sherry vinegar", "Sherry vinegar"},
	{"vinegar", "white vinegar", "White vinegar"},

	// Herbs.
	{"fresh basil", "basil", "Basil"},
	{"basil", "basil", "Basil"},
	{"cilantro", "cilantro", "Cilantro"},
	{"coriander leaves", "cilantro", "Cilantro"},
	{"flat-leaf parsley", "parsley", "Parsley"},
	{"parsley", "parsley", "Parsley"},
	{"rosemary", "rosemary", "Rosemary"},
	{"thyme", "thyme", "Thyme"},
	{"oregano", "oregano", "Oregano"},
	{"sage", "sage", "Sage"},
	{"dill", "dill", "Dill"},
	{"mint", "mint", "Mint"},
	{"tarragon", "tarragon", "Tarragon"},
	{"bay leaf", "bay leaves", "Bay leaves"},
	{"bay leaves", "bay leaves", "Bay leaves"},
	{"lemongrass", "lemongrass", "Lemongrass"},

	// Spices.
	{"black pepper", "black pepper", "Black pepper"},
	{"peppercorn", "black pepper", "Black pepper"},
	{"white pepper", "white pepper", "White pepper"},
	{"cayenne", "cayenne pepper", "Cayenne pepper"},
	{"red pepper flakes", "red pepper flakes", "Red pepper flakes"},
	{"crushed red pepper", "red pepper flakes", "Red pepper flakes"},
	{"chili powder", "chili powder", "Chili powder"},
	{"chile powder", "chili powder", "Chili powder"},
	{"smoked paprika", "smoked paprika", "Smoked paprika"},
	{"paprika", "paprika", "Paprika"},
	{"ground cumin", "cumin", "Cumin"},
	{"cumin", "cumin", "Cumin"},
	{"ground coriander", "coriander", "Coriander"},
	{"coriander", "coriander", "Coriander"},
	{"turmeric", "turmeric", "Turmeric"},
	{"ground ginger", "ground ginger", "Ground ginger"},
	{"fresh ginger", "ginger", "Ginger"},
	{"ginger", "ginger", "Ginger"},
	{"cinnamon", "cinnamon", "Cinnamon"},
	{"nutmeg", "nutmeg", "Nutmeg"},
	{"clove", "cloves", "Cloves"},
	{"allspice", "allspice", "Allspice"},
	{"cardamom", "cardamom", "Cardamom"},
	{"curry powder", "curry powder", "Curry powder"},
	{"garam masala", "garam masala", "Garam masala"},
	{"italian seasoning", "italian seasoning", "Italian seasoning"},
	{"taco seasoning", "taco seasoning", "Taco seasoning"},
	{"everything bagel seasoning", "everything bagel seasoning", "Everything bagel seasoning"},
	{"kosher salt", "salt", "Salt"},
	{"sea salt", "salt", "Salt"},
	{"table salt", "salt", "Salt"},
	{"salt", "salt", "Salt"},
	{"saffron", "saffron", "Saffron"},
	{"star anise", "star anise", "Star anise"},
	{"fennel seed", "fennel seeds", "Fennel seeds"},
	{"mustard seed", "mustard seeds", "Mustard seeds"},
	{"sesame seed", "sesame seeds", "Sesame seeds"},
	{"poppy seed", "poppy seeds", "Poppy seeds"},

	// Condiments & sauces.
	{"dijon mustard", "dijon mustard", "Dijon mustard"},
	{"dijon", "dijon mustard", "Dijon mustard"},
	{"whole grain mustard", "whole grain mustard", "Whole grain mustard"},
	{"yellow mustard", "mustard", "Mustard"},
	{"mustard", "mustard", "Mustard"},
	{"mayonnaise", "mayonnaise", "Mayonnaise"},
	{"mayo", "mayonnaise", "Mayonnaise"},
	{"ketchup", "ketchup", "Ketchup"},
	{"worcestershire", "worcestershire sauce", "Worcestershire sauce"},
	{"hot sauce", "hot sauce", "Hot sauce"},
	{"tabasco", "hot sauce", "Hot sauce"},
	{"barbecue sauce", "barbecue sauce", "Barbecue sauce"},
	{"bbq sauce", "barbecue sauce", "Barbecue sauce"},
	{"ranch dressing", "ranch dressing", "Ranch dressing"},
	{"salsa", "salsa", "Salsa"},
	{"pesto", "pesto", "Pesto"},
	{"marinara", "marinara sauce", "Marinara sauce"},
	{"tahini", "tahini", "Tahini"},
	{"hummus", "hummus", "Hummus"},

	// Grains & rices.
	{"arborio rice", "arborio rice", "Arborio rice"},
	{"basmati rice", "basmati rice", "Basmati rice"},
	{"jasmine rice", "jasmine rice", "Jasmine rice"},
	{"brown rice", "brown rice", "Brown rice"},
	{"wild rice", "wild rice", "Wild rice"},
	{"white rice", "rice", "Rice"},
	{"long-grain rice", "rice", "Rice"},
	{"long grain rice", "rice", "Rice"},
	{"rice noodle", "rice noodles", "Rice noodles"},
	{"rice wine", "rice wine", "Rice wine"},
	{"rice", "rice", "Rice"},
	{"quinoa", "quinoa", "Quinoa"},
	{"rolled oats", "oats", "Oats"},
	{"old-fashioned oats", "oats", "Oats"},
	{"steel-cut oats", "steel-cut oats", "Steel-cut oats"},
	{"oats", "oats", "Oats"},
	{"oatmeal", "oats", "Oats"},
	{"couscous", "couscous", "Couscous"},
	{"barley", "barley", "Barley"},
	{"farro", "farro", "Farro"},
	{"bulgur", "bulgur", "Bulgur"},
	{"polenta", "polenta", "Polenta"},
	{"cornmeal", "cornmeal", "Cornmeal"},
	{"granola", "granola", "Granola"},

	// Pastas & noodles.
	{"spaghetti", "spaghetti", "Spaghetti"},
	{"penne", "penne", "Penne"},
	{"fettuccine", "fettuccine", "Fettuccine"},
	{"linguine", "linguine", "Linguine"},
	{"rigatoni", "rigatoni", "Rigatoni"},
	{"macaroni", "macaroni", "Macaroni"},
	{"orzo", "orzo", "Orzo"},
	{"lasagna noodles", "lasagna noodles", "Lasagna noodles"},
	{"lasagne", "lasagna noodles", "Lasagna noodles"},
	{"ramen noodle", "ramen noodles", "Ramen noodles"},
	{"ramen", "ramen noodles", "Ramen noodles"},
	{"soba", "soba noodles", "Soba noodles"},
	{"udon", "udon noodles", "Udon noodles"},
	{"glass noodle", "glass noodles", "Glass noodles"},
	{"noodle", "noodles", "Noodles"},
	{"pasta", "pasta", "Pasta"},

	// Breads & wraps.
	{"panko", "panko breadcrumbs", "Panko breadcrumbs"},
	{"breadcrumb", "breadcrumbs", "Breadcrumbs"},
	{"bread crumb", "breadcrumbs", "Breadcrumbs"},
	{"sourdough", "sourdough bread", "Sourdough bread"},
	{"baguette", "baguette", "Baguette"},
	{"ciabatta", "ciabatta", "Ciabatta"},
	{"pita", "pita bread", "Pita bread"},
	{"naan", "naan", "Naan"},
	{"hamburger bun", "hamburger buns", "Hamburger buns"},
	{"hot dog bun", "hot dog buns", "Hot dog buns"},
	{"english muffin", "english muffins", "English muffins"},
	{"bagel", "bagels", "Bagels"},
	{"bread", "bread", "Bread"},

	// Legumes.
	{"black bean", "black beans", "Black beans"},
	{"pinto bean", "pinto beans", "Pinto beans"},
	{"kidney bean", "kidney beans", "Kidney beans"},
	{"cannellini", "cannellini beans", "Cannellini beans"},
	{"white bean", "white beans", "White beans"},
	{"navy bean", "white beans", "White beans"},
	{"great northern bean", "white beans", "White beans"},
	{"garbanzo", "chickpeas", "Chickpeas"},
	{"chickpea", "chickpeas", "Chickpeas"},
	{"green bean", "green beans", "Green beans"},
	{"edamame", "edamame", "Edamame"},
	{"lentil", "lentils", "Lentils"},
	{"split pea", "split peas", "Split peas"},
	{"black-eyed pea", "black-eyed peas", "Black-eyed peas"},

	// Nuts & seeds.
	{"slivered almond", "almonds", "Almonds"},
	{"almond", "almonds", "Almonds"},
	{"walnut", "walnuts", "Walnuts"},
	{"pecan", "pecans", "Pecans"},
	{"cashew", "cashews", "Cashews"},
	{"pistachio", "pistachios", "Pistachios"},
	{"pine nut", "pine nuts", "Pine nuts"},
	{"macadamia", "macadamia nuts", "Macadamia nuts"},
	{"hazelnut", "hazelnuts", "Hazelnuts"},
	{"peanut", "peanuts", "Peanuts"},
	{"chia seed", "chia seeds", "Chia seeds"},
	{"flax seed", "flaxseed", "Flaxseed"},
	{"flaxseed", "flaxseed", "Flaxseed"},
	{"pumpkin seed", "pumpkin seeds", "Pumpkin seeds"},
	{"pepitas", "pumpkin seeds", "Pumpkin seeds"},
	{"sunflower seed", "sunflower seeds", "Sunflower seeds"},

	// Produce.
	{"baby spinach", "spinach", "Spinach"},
	{"spinach", "spinach", "Spinach"},
	{"kale", "kale", "Kale"},
	{"arugula", "arugula", "Arugula"},
	{"romaine", "romaine lettuce", "Romaine lettuce"},
	{"iceberg lettuce", "iceberg lettuce", "Iceberg lettuce"},
	{"lettuce", "lettuce", "Lettuce"},
	{"broccoli", "broccoli", "Broccoli"},
	{"cauliflower", "cauliflower", "Cauliflower"},
	{"brussels sprout", "brussels sprouts", "Brussels sprouts"},
	{"cabbage", "cabbage", "Cabbage"},
	{"baby carrot", "carrot", "Carrots"},
	{"carrot", "carrot", "Carrots"},
	{"celery", "celery", "Celery"},
	{"cucumber", "cucumber", "Cucumbers"},
	{"zucchini", "zucchini", "Zucchini"},
	{"yellow squash", "yellow squash", "Yellow squash"},
	{"butternut squash", "butternut squash", "Butternut squash"},
	{"acorn squash", "acorn squash", "Acorn squash"},
	{"spaghetti squash", "spaghetti squash", "Spaghetti squash"},
	{"eggplant", "eggplant", "Eggplant"},
	{"aubergine", "eggplant", "Eggplant"},
	{"sweet potato", "sweet potato", "Sweet potatoes"},
	{"yukon gold", "potato", "Potatoes"},
	{"russet", "potato", "Potatoes"},
	{"red potato", "potato", "Potatoes"},
	{"fingerling", "potato", "Potatoes"},
	{"potato", "potato", "Potatoes"},
	{"portobello", "portobello mushrooms", "Portobello mushrooms"},
	{"cremini", "cremini mushrooms", "Cremini mushrooms"},
	{"shiitake", "shiitake mushrooms", "Shiitake mushrooms"},
	{"button mushroom", "mushroom", "Mushrooms"},
	{"mushroom", "mushroom", "Mushrooms"},
	{"corn kernel", "corn", "Corn"},
	{"sweet corn", "corn", "Corn"},
	{"corn on the cob", "corn", "Corn"},
	{"corn", "corn", "Corn"},
	{"asparagus", "asparagus", "Asparagus"},
	{"artichoke", "artichokes", "Artichokes"},
	{"beet", "beets", "Beets"},
	{"radish", "radishes", "Radishes"},
	{"snap pea", "snap peas", "Snap peas"},
	{"snow pea", "snow peas", "Snow peas"},
	{"frozen peas", "peas", "Peas"},
	{"peas", "peas", "Peas"},
	{"jalapeno", "jalapeno", "Jalapeños"},
	{"jalapeño", "jalapeno", "Jalapeños"},
	{"habanero", "habanero", "Habaneros"},
	{"serrano", "serrano", "Serranos"},
	{"poblano", "poblano", "Poblanos"},
	{"chipotle", "chipotle", "Chipotles"},
	{"avocado", "avocado", "Avocados"},

	// Fruits.
	{"granny smith", "apple", "Apples"},
	{"honeycrisp", "apple", "Apples"},
	{"apple", "apple", "Apples"},
	{"banana", "banana", "Bananas"},
	{"strawberry", "strawberries", "Strawberries"},
	{"blueberry", "blueberries", "Blueberries"},
	{"raspberry", "raspberries", "Raspberries"},
	{"blackberry", "blackberries", "Blackberries"},
	{"mango", "mango", "Mangoes"},
	{"pineapple", "pineapple", "Pineapple"},
	{"peach", "peach", "Peaches"},
	{"pear", "pear", "Pears"},
	{"plum", "plum", "Plums"},
	{"cherry", "cherries", "Cherries"},
	{"grape", "grapes", "Grapes"},
	{"watermelon", "watermelon", "Watermelon"},
	{"cantaloupe", "cantaloupe", "Cantaloupe"},
	{"kiwi", "kiwi", "Kiwi"},
	{"pomegranate", "pomegranate", "Pomegranate"},
	{"cranberry", "cranberries", "Cranberries"},
	{"raisin", "raisins", "Raisins"},
	{"date", "dates", "Dates"},
	{"coconut flake", "shredded coconut", "Shredded coconut"},
	{"shredded coconut", "shredded coconut", "Shredded coconut"},

	// Seafood.
	{"salmon", "salmon", "Salmon"},
	{"tuna", "tuna", "Tuna"},
	{"cod", "cod", "Cod"},
	{"tilapia", "tilapia", "Tilapia"},
	{"halibut", "halibut", "Halibut"},
	{"mahi", "mahi mahi", "Mahi mahi"},
	{"shrimp", "shrimp", "Shrimp"},
	{"prawn", "shrimp", "Shrimp"},
	{"scallop", "scallops", "Scallops"},
	{"crab", "crab", "Crab"},
	{"lobster", "lobster", "Lobster"},
	{"mussel", "mussels", "Mussels"},
	{"clam", "clams", "Clams"},
	{"oyster sauce", "oyster sauce", "Oyster sauce"},
	{"oyster", "oysters", "Oysters"},
	{"calamari", "calamari", "Calamari"},
	{"squid", "calamari", "Calamari"},
	{"anchovy", "anchovies", "Anchovies"},
	{"sardine", "sardines", "Sardines"},

	// Asian & Mediterranean condiments.
	{"soy sauce", "soy sauce", "Soy sauce"},
	{"tamari", "soy sauce", "Soy sauce"},
	{"fish sauce", "fish sauce", "Fish sauce"},
	{"hoisin", "hoisin sauce", "Hoisin sauce"},
	{"sriracha", "sriracha", "Sriracha"},
	{"gochujang", "gochujang", "Gochujang"},
	{"miso", "miso paste", "Miso paste"},
	{"mirin", "mirin", "Mirin"},
	{"sake", "sake", "Sake"},
	{"wasabi", "wasabi", "Wasabi"},
	{"kimchi", "kimchi", "Kimchi"},
	{"nori", "nori", "Nori"},
	{"curry paste", "curry paste", "Curry paste"},
	{"harissa", "harissa", "Harissa"},
	{"za'atar", "za'atar", "Za'atar"},
	{"zaatar", "za'atar", "Za'atar"},
	{"capers", "capers", "Capers"},
	{"kalamata", "kalamata olives", "Kalamata olives"},
	{"green olive", "green olives", "Green olives"},
	{"black olive", "black olives", "Black olives"},
	{"olive", "olives", "Olives"},
	{"artichoke heart", "artichoke hearts", "Artichoke hearts"},

	// Pantry staples.
	{"coconut cream", "coconut cream", "Coconut cream"},
	{"dry white wine", "white wine", "White wine"},
	{"white wine", "white wine", "White wine"},
	{"dry red wine", "red wine", "Red wine"},
	{"red wine", "red wine", "Red wine"},
	{"gelatin", "gelatin", "Gelatin"},
	{"espresso powder", "espresso powder", "Espresso powder"},
	{"instant coffee", "instant coffee", "Instant coffee"},
	{"coffee", "coffee", "Coffee"},
	{"green tea", "green tea", "Green tea"},
	{"tea", "tea", "Tea"},

	// Plant proteins.
	{"extra-firm tofu", "tofu", "Tofu"},
	{"extra firm tofu", "tofu", "Tofu"},
	{"firm tofu", "tofu", "Tofu"},
	{"silken tofu", "silken tofu", "Silken tofu"},
	{"tofu", "tofu", "Tofu"},
	{"tempeh", "tempeh", "Tempeh"},
	{"seitan", "seitan", "Seitan"},
}

// matchFamily returns the first family rule matching the lowercase text,
// using word-boundary containment so "oil" never matches inside "boiled".
func matchFamily(lower string) (FamilyRule, bool) {
	for _, rule := range familyRules {
		if containsWord(lower, rule.Pattern) {
			return rule, true
		}
	}
	return FamilyRule{}, false
}

// containsWord reports whether pattern occurs in s bounded by non-letters.
// Trailing letters are allowed when they form a simple plural of the
// pattern's final word ("clove" matches "cloves").
func containsWord(s, pattern string) bool {
	for start := 0; ; {
		idx := strings.Index(s[start:], pattern)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(pattern)

		leftOK := idx == 0 || !isLetter(s[idx-1])
		rightOK := end == len(s) || !isLetter(s[end]) || isPluralTail(s[end:])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
		if start >= len(s) {
			return false
		}
	}
}

// isPluralTail accepts the plural suffixes left after a singular pattern
// matched a prefix of the word: "s", "es", "ies" boundaries.
func isPluralTail(tail string) bool {
	for _, suffix := range []string{"s", "es"} {
		if strings.HasPrefix(tail, suffix) {
			rest := tail[len(suffix):]
			if rest == "" || !isLetter(rest[0]) {
				return true
			}
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
