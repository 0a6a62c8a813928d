package model

// Permission 接口权限
type Permission string

const (
	PermDataRead           Permission = "data:read"
	PermDataWrite          Permission = "data:write"
	PermTranslationsManage Permission = "translations:manage"
	PermUsersManage        Permission = "users:manage"
)

var rolePermissions = map[string][]Permission{
	RoleAdmin: {PermDataRead, PermDataWrite, PermTranslationsManage, PermUsersManage},
	RoleUser:  {PermDataRead, PermDataWrite},
}

// HasPermission 判断角色是否具备某权限，未知角色无任何权限
func HasPermission(role string, p Permission) bool {
	for _, granted := range rolePermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}
