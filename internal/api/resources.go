package api

import (
	"strings"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/validation"
)

// Column bounds: qty is an INTEGER, money columns are numeric(12,2).
const (
	maxQty   = "max=2147483647"
	maxMoney = "max=9999999999.99"
)

var genderRule = "filled,string,oneof=" + strings.Join(domain.Genders, " ")

// Resource definitions. Field names, bounds and lookups here are the wire
// contract of each endpoint.
var (
	BranchResource = Resource{
		Name:       "Branch",
		Collection: "branches",
		Rules: validation.Rules{
			{Field: "name", Tags: "filled,string,max=255"},
			{Field: "location", Tags: "filled,string,max=255"},
			{Field: "contact_number", Tags: "filled,string,max=20"},
		},
	}

	CategoryResource = Resource{
		Name:       "Category",
		Collection: "categories",
		Rules: validation.Rules{
			{Field: "name", Tags: "filled,string,max=255"},
			{Field: "description", Tags: "omitempty,string"},
		},
	}

	ProductResource = Resource{
		Name:       "Product",
		Collection: "products",
		Rules: validation.Rules{
			{Field: "name", Tags: "filled,string,max=255"},
			{Field: "cost", Tags: "filled,numeric,min=0," + maxMoney},
			{Field: "price", Tags: "filled,numeric,min=0," + maxMoney},
			{Field: "image", Tags: "omitempty,string,max=255"},
			{Field: "description", Tags: "omitempty,string"},
			{Field: "category_id", Tags: "filled,integer,exists=category"},
		},
		Filters: []string{"category_id"},
	}

	PositionResource = Resource{
		Name:       "Position",
		Collection: "positions",
		Rules: validation.Rules{
			{Field: "branch_id", Tags: "filled,integer,exists=branch"},
			{Field: "name", Tags: "filled,string,max=255"},
			{Field: "description", Tags: "omitempty,string"},
		},
		Filters: []string{"branch_id"},
	}

	StaffResource = Resource{
		Name:       "Staff",
		Collection: "staff",
		Rules: validation.Rules{
			{Field: "position_id", Tags: "filled,integer,exists=position"},
			{Field: "name", Tags: "filled,string,max=255"},
			{Field: "gender", Tags: genderRule},
			{Field: "dob", Tags: "filled,date"},
			{Field: "pob", Tags: "filled,string,max=255"},
			{Field: "address", Tags: "filled,string,max=255"},
			{Field: "phone", Tags: "filled,string,max=20"},
			{Field: "nation_id_card", Tags: "filled,string,max=50"},
		},
		Filters: []string{"position_id"},
	}

	InvoiceResource = Resource{
		Name:       "Invoice",
		Collection: "invoices",
		Rules: validation.Rules{
			{Field: "user_id", Tags: "filled,integer,exists=users"},
			{Field: "total", Tags: "filled,numeric,min=0," + maxMoney},
		},
		Filters: []string{"user_id"},
	}

	InvoiceItemResource = Resource{
		Name:       "Invoice item",
		Collection: "invoice_items",
		Rules: validation.Rules{
			{Field: "invoice_id", Tags: "filled,integer,exists=invoice"},
			{Field: "product_id", Tags: "filled,integer,exists=product"},
			{Field: "qty", Tags: "filled,integer,min=1," + maxQty},
			{Field: "price", Tags: "filled,numeric,min=0," + maxMoney},
		},
		Filters: []string{"invoice_id", "product_id"},
	}
)
