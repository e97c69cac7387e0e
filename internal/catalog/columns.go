package catalog

// Колонки табличного набора данных
const (
	ColType             = "Type"
	ColSKU              = "SKU"
	ColName             = "Name"
	ColPublished        = "Published"
	ColFeatured         = "Is featured?"
	ColVisibility       = "Visibility in catalog"
	ColShortDescription = "Short description"
	ColDescription      = "Description"
	ColTaxStatus        = "Tax status"
	ColTaxClass         = "Tax class"
	ColInStock          = "In stock?"
	ColStock            = "Stock"
	ColBackorders       = "Backorders allowed?"
	ColSoldIndividually = "Sold individually?"
	ColWeight           = "Weight (lbs)"
	ColLength           = "Length (in)"
	ColWidth            = "Width (in)"
	ColHeight           = "Height (in)"
	ColReviewsAllowed   = "Allow customer reviews?"
	ColPurchaseNote     = "Purchase note"
	ColSalePrice        = "Sale price"
	ColRegularPrice     = "Regular price"
	ColCategories       = "Categories"
	ColTags             = "Tags"
	ColImages           = "Images"
	ColParent           = "Parent"
	ColAttributeName    = "Attribute 1 name"
	ColAttributeValues  = "Attribute 1 value(s)"
	ColAttributeVisible = "Attribute 1 visible"
	ColAttributeGlobal  = "Attribute 1 global"
)

const (
	// MetaColumnPrefix — префикс колонок с произвольными мета-полями
	MetaColumnPrefix = "Meta: "

	// TypeVariation — значение колонки Type для строк-вариаций
	TypeVariation = "variation"

	categoryPathSep = ">"
	listSep         = ","
)
