package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	DirectoryHandler *DirectoryHandler
	ReviewHandler    *ReviewHandler
	ContactHandler   *ContactHandler
	AdminHandler     *AdminHandler
}
