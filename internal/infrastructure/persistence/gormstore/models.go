package gormstore

import "time"

// UserModel é o model GORM para contas
type UserModel struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;index"`
	MaxPlates    *int      `gorm:""`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// PlateModel é o model GORM para placas. O índice único em number é o
// árbitro de cadastros concorrentes com o mesmo número.
type PlateModel struct {
	ID                 string     `gorm:"type:varchar(36);primaryKey"`
	Number             string     `gorm:"type:varchar(10);uniqueIndex;not null"`
	TransportadoraID   string     `gorm:"type:varchar(36);not null;index"`
	TransportadoraName string     `gorm:"type:varchar(255);not null"`
	CreatedAt          time.Time  `gorm:"autoCreateTime;index"`
	ScheduledDate      *time.Time `gorm:""`
	Observations       *string    `gorm:"type:varchar(500)"`
	ArrivalConfirmed   *time.Time `gorm:""`
	DepartureConfirmed *time.Time `gorm:""`
}

func (PlateModel) TableName() string {
	return "plates"
}

// SystemConfigModel é a linha singleton de configuração (id fixo em 1)
type SystemConfigModel struct {
	ID                         uint   `gorm:"primaryKey"`
	MaxTotalPlates             int    `gorm:"not null"`
	MaxPlatesPerTransportadora int    `gorm:"not null"`
	AllowedStart               string `gorm:"type:varchar(5);not null"`
	AllowedEnd                 string `gorm:"type:varchar(5);not null"`
	// AllowedDays como CSV de índices 0-6 ("1,2,3,4,5")
	AllowedDays string    `gorm:"type:varchar(20);not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (SystemConfigModel) TableName() string {
	return "system_config"
}

// SchedulingWindowModel é o model GORM para janelas de agendamento
type SchedulingWindowModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SchedulingWindowModel) TableName() string {
	return "scheduling_windows"
}
