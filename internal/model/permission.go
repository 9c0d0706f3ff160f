package model

// Permission is the code of a capability that gates a console action or route.
type Permission string

const (
	// PermissionViewDashboard allows opening the dashboard overview.
	PermissionViewDashboard Permission = "VIEW_DASHBOARD"

	// PermissionViewUsers allows listing and inspecting user accounts.
	PermissionViewUsers Permission = "VIEW_USERS"

	// PermissionCreateUsers allows creating user accounts.
	PermissionCreateUsers Permission = "CREATE_USERS"

	// PermissionEditUsers allows editing user accounts.
	PermissionEditUsers Permission = "EDIT_USERS"

	// PermissionDeleteUsers allows deleting user accounts.
	PermissionDeleteUsers Permission = "DELETE_USERS"

	// PermissionVerifyIdentities allows reviewing identity verification requests.
	PermissionVerifyIdentities Permission = "VERIFY_IDENTITIES"

	// PermissionManageCategories allows creating and editing listing categories.
	PermissionManageCategories Permission = "MANAGE_CATEGORIES"

	// PermissionViewAuctions allows viewing auctions.
	PermissionViewAuctions Permission = "VIEW_AUCTIONS"

	// PermissionManageAuctions allows moderating and closing auctions.
	PermissionManageAuctions Permission = "MANAGE_AUCTIONS"

	// PermissionViewTenders allows viewing tenders.
	PermissionViewTenders Permission = "VIEW_TENDERS"

	// PermissionManageTenders allows moderating tenders.
	PermissionManageTenders Permission = "MANAGE_TENDERS"

	// PermissionViewChat allows reading support chat threads.
	PermissionViewChat Permission = "VIEW_CHAT"

	// PermissionManageCommunications allows sending announcements and notifications.
	PermissionManageCommunications Permission = "MANAGE_COMMUNICATIONS"

	// PermissionViewReports allows viewing analytics reports.
	PermissionViewReports Permission = "VIEW_REPORTS"

	// PermissionExportReports allows downloading reports and the permission matrix.
	PermissionExportReports Permission = "EXPORT_REPORTS"

	// PermissionGenerateDocuments allows generating PDF and QR documents.
	PermissionGenerateDocuments Permission = "GENERATE_DOCUMENTS"

	// PermissionViewSubscriptions allows viewing subscription plans.
	PermissionViewSubscriptions Permission = "VIEW_SUBSCRIPTIONS"

	// PermissionManageSubscriptions allows editing subscription plans.
	PermissionManageSubscriptions Permission = "MANAGE_SUBSCRIPTIONS"

	// PermissionViewTerms allows viewing terms and conditions.
	PermissionViewTerms Permission = "VIEW_TERMS"

	// PermissionManageTerms allows editing terms and conditions.
	PermissionManageTerms Permission = "MANAGE_TERMS"

	// PermissionViewConfiguration allows viewing platform configuration.
	PermissionViewConfiguration Permission = "VIEW_CONFIGURATION"

	// PermissionSystemConfiguration allows changing platform configuration.
	PermissionSystemConfiguration Permission = "SYSTEM_CONFIGURATION"

	// PermissionManageAdmins allows managing administrator accounts.
	PermissionManageAdmins Permission = "MANAGE_ADMINS"

	// PermissionManageRoles allows changing account roles.
	PermissionManageRoles Permission = "MANAGE_ROLES"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionViewDashboard,
	PermissionViewUsers,
	PermissionCreateUsers,
	PermissionEditUsers,
	PermissionDeleteUsers,
	PermissionVerifyIdentities,
	PermissionManageCategories,
	PermissionViewAuctions,
	PermissionManageAuctions,
	PermissionViewTenders,
	PermissionManageTenders,
	PermissionViewChat,
	PermissionManageCommunications,
	PermissionViewReports,
	PermissionExportReports,
	PermissionGenerateDocuments,
	PermissionViewSubscriptions,
	PermissionManageSubscriptions,
	PermissionViewTerms,
	PermissionManageTerms,
	PermissionViewConfiguration,
	PermissionSystemConfiguration,
	PermissionManageAdmins,
	PermissionManageRoles,
}
