package models

// Plan — коммерческий тариф, ограничивающий возможности церкви.
type Plan struct {
	ID          string //
	Name        string //
	MaxMembers  int    // Максимум участников на филиал
	MaxBranches int    // Максимум филиалов на церковь
}

// Subscription — подписка пользователя на тариф.
// Активная подписка определяет действующий тариф; без неё тариф "free".
type Subscription struct {
	ID     string //
	UserID string //
	PlanID string //
	Active bool   //
}

// FreePlanName — имя тарифа по умолчанию при отсутствии активной подписки.
const FreePlanName = "free"
