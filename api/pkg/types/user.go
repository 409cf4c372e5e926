package types

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Login     string    `json:"login" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email"`
	Realname  string    `json:"realname"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HomeProjectName is the name of the user's home project
func (u *User) HomeProjectName() string {
	return "home:" + u.Login
}

type Group struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"uniqueIndex;not null"`
	Email string `json:"email"`
}

type GroupUser struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	GroupID uint `json:"group_id" gorm:"uniqueIndex:idx_group_user"`
	UserID  uint `json:"user_id" gorm:"uniqueIndex:idx_group_user"`
}

type Role struct {
	ID    uint      `json:"id" gorm:"primaryKey"`
	Title RoleTitle `json:"title" gorm:"uniqueIndex;not null"`
}

// Relationship grants a role on a project or package to a user or a group
type Relationship struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProjectID *uint  `json:"project_id,omitempty" gorm:"index"`
	PackageID *uint  `json:"package_id,omitempty" gorm:"index"`
	RoleID    uint   `json:"role_id"`
	Role      *Role  `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	UserID    *uint  `json:"user_id,omitempty" gorm:"index"`
	User      *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GroupID   *uint  `json:"group_id,omitempty" gorm:"index"`
	Group     *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
}

type WatchedProject struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_watched_project"`
	ProjectID uint `json:"project_id" gorm:"uniqueIndex:idx_watched_project"`
}

type AttribType struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Namespace string `json:"namespace" gorm:"uniqueIndex:idx_attrib_type_name;not null"`
	Name      string `json:"name" gorm:"uniqueIndex:idx_attrib_type_name;not null"`
}

type Attrib struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	AttribTypeID uint           `json:"attrib_type_id" gorm:"index"`
	AttribType   *AttribType    `json:"attrib_type,omitempty" gorm:"foreignKey:AttribTypeID"`
	ProjectID    *uint          `json:"project_id,omitempty" gorm:"index"`
	PackageID    *uint          `json:"package_id,omitempty" gorm:"index"`
	Values       []*AttribValue `json:"values,omitempty" gorm:"foreignKey:AttribID;constraint:OnDelete:CASCADE"`
}

type AttribValue struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	AttribID uint   `json:"attrib_id" gorm:"index"`
	Value    string `json:"value" gorm:"type:text"`
	Position int    `json:"position"`
}
