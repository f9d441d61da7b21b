package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Meals() MealRepository
	Reviews() ReviewRepository
	Memberships() MembershipRepository
	Carts() CartRepository
	Payments() PaymentRepository
}
