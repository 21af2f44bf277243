package db_models

// Closed string domains shared with the database schema. The literal values
// are part of the wire format and must not be renamed.

type CollaborationStatus string

const (
	StatusPending   CollaborationStatus = "pending"
	StatusAccepted  CollaborationStatus = "accepted"
	StatusRejected  CollaborationStatus = "rejected"
	StatusActive    CollaborationStatus = "active"
	StatusCompleted CollaborationStatus = "completed"
	StatusCancelled CollaborationStatus = "cancelled"
)

type CollaborationType string

const (
	TypeFreeMeal        CollaborationType = "free_meal"
	TypeDiscount        CollaborationType = "discount"
	TypeProductExchange CollaborationType = "product_exchange"
	TypeEventInvitation CollaborationType = "event_invitation"
)

type CreatorCategory string

const (
	CategoryFoodie    CreatorCategory = "foodie"
	CategoryLifestyle CreatorCategory = "lifestyle"
	CategoryTravel    CreatorCategory = "travel"
	CategoryFashion   CreatorCategory = "fashion"
	CategoryFitness   CreatorCategory = "fitness"
	CategoryGeneral   CreatorCategory = "general"
)

type UserType string

const (
	UserTypeRestaurant UserType = "restaurant"
	UserTypeCreator    UserType = "creator"
)

var CollaborationStatuses = []CollaborationStatus{
	StatusPending, StatusAccepted, StatusRejected,
	StatusActive, StatusCompleted, StatusCancelled,
}

var CollaborationTypes = []CollaborationType{
	TypeFreeMeal, TypeDiscount, TypeProductExchange, TypeEventInvitation,
}

var CreatorCategories = []CreatorCategory{
	CategoryFoodie, CategoryLifestyle, CategoryTravel,
	CategoryFashion, CategoryFitness, CategoryGeneral,
}

var FoodTypes = []string{
	"dominicana", "italiana", "china", "mexicana", "japonesa",
	"mediterranea", "vegetariana", "internacional", "comida_rapida",
	"mariscos", "parrilla", "postres",
}

var Provinces = []string{
	"santo_domingo", "santiago", "la_vega", "san_cristobal",
	"puerto_plata", "san_pedro_macoris", "la_romana", "barahona",
	"azua", "moca", "bonao", "san_francisco_macoris", "bani",
	"monte_cristi", "nagua", "higuey", "mao", "cotui",
	"esperanza", "constanza",
}

func (s CollaborationStatus) Valid() bool {
	for _, v := range CollaborationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (t CollaborationType) Valid() bool {
	for _, v := range CollaborationTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (c CreatorCategory) Valid() bool {
	for _, v := range CreatorCategories {
		if c == v {
			return true
		}
	}
	return false
}

func (u UserType) Valid() bool {
	return u == UserTypeRestaurant || u == UserTypeCreator
}

func ValidProvince(p string) bool {
	for _, v := range Provinces {
		if p == v {
			return true
		}
	}
	return false
}

func ValidFoodType(f string) bool {
	for _, v := range FoodTypes {
		if f == v {
			return true
		}
	}
	return false
}
