package model

// AccessCheckRequest asks whether the caller may use a permission or open a route.
type AccessCheckRequest struct {
	Permission Permission `json:"permission" binding:"required_without=Route,max=64"`
	Route      string     `json:"route" binding:"required_without=Permission,max=512"`
}

// AccessCheckResponse is the decision for an AccessCheckRequest.
type AccessCheckResponse struct {
	Role       Role       `json:"role"`
	Permission Permission `json:"permission,omitempty"`
	Route      string     `json:"route,omitempty"`
	Allowed    bool       `json:"allowed"`
	Inactive   bool       `json:"inactive"`
}

// MatrixEntry lists the roles holding one permission.
type MatrixEntry struct {
	Permission Permission `json:"permission"`
	Roles      []Role     `json:"roles"`
}
