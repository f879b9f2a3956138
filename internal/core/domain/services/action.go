package services

// Action is the closed set of operations the access policy decides on.
type Action int

const (
	ActionUnknown Action = iota

	CreateUser
	ListUsers
	ReadUser
	UpdateUser
	DeleteUser

	CreateCity
	ListCities
	ReadCity

	CreateAddress
	ListAddresses
	ReadAddress
	UpdateAddress
	DeleteAddress

	CreateOrder
	ListOrders
	ReadOrder
	UpdateOrder
	ChangeOrderStatus
	DeleteOrder

	CreateOffer
	ListOffers
	ReadOffer
	UpdateOffer
	DeleteOffer

	CreateComplaint
	ListComplaints
	ReadComplaint
	DeleteComplaint

	CreateRating
	ListRatings
	ReadRating
	DeleteRating

	Logout
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:     "unknown",
		CreateUser:        "create user",
		ListUsers:         "list users",
		ReadUser:          "read user",
		UpdateUser:        "update user",
		DeleteUser:        "delete user",
		CreateCity:        "create city",
		ListCities:        "list cities",
		ReadCity:          "read city",
		CreateAddress:     "create address",
		ListAddresses:     "list addresses",
		ReadAddress:       "read address",
		UpdateAddress:     "update address",
		DeleteAddress:     "delete address",
		CreateOrder:       "create order",
		ListOrders:        "list orders",
		ReadOrder:         "read order",
		UpdateOrder:       "update order",
		ChangeOrderStatus: "change order status",
		DeleteOrder:       "delete order",
		CreateOffer:       "create offer",
		ListOffers:        "list offers",
		ReadOffer:         "read offer",
		UpdateOffer:       "update offer",
		DeleteOffer:       "delete offer",
		CreateComplaint:   "create complaint",
		ListComplaints:    "list complaints",
		ReadComplaint:     "read complaint",
		DeleteComplaint:   "delete complaint",
		CreateRating:      "create rating",
		ListRatings:       "list ratings",
		ReadRating:        "read rating",
		DeleteRating:      "delete rating",
		Logout:            "logout",
	}
}

func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}
