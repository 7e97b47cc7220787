package domain

// Role is the marketplace role a user registered with.
type Role string

const (
	RoleFarmer Role = "FARMER"
	RoleBuyer  Role = "BUYER"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether the role is one of the enumerated marketplace roles.
func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleBuyer || r == RoleAdmin
}

// Country is one of the markets the platform operates in.
type Country string

const (
	CountryKenya    Country = "KENYA"
	CountryUganda   Country = "UGANDA"
	CountryTanzania Country = "TANZANIA"
)

func (c Country) Valid() bool {
	return c == CountryKenya || c == CountryUganda || c == CountryTanzania
}

// VerificationStatus indicates whether a user's identity documents have been reviewed.
type VerificationStatus string

const (
	NotVerified VerificationStatus = "NOT_VERIFIED"
	Verified    VerificationStatus = "VERIFIED"
)

// UserSummary is the identity slice owned by the session: enough to render
// the header and authorize requests, nothing more.
type UserSummary struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Role      Role    `json:"role"`
	Country   Country `json:"country"`
}

// UserProfile is the full profile owned by the profile store and fetched on
// demand with the session's token. Field names follow the backend wire format.
type UserProfile struct {
	ID                 int64              `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Role               Role               `json:"role"`
	Country            Country            `json:"country"`
	PhoneNumber        string             `json:"phoneNumber,omitempty"`
	County             string             `json:"county,omitempty"`
	SubCounty          string             `json:"subCounty,omitempty"`
	Latitude           float64            `json:"latitude,omitempty"`
	Longitude          float64            `json:"longitude,omitempty"`
	IDNumber           string             `json:"idNumber,omitempty"`
	IDImageURL         string             `json:"idImageUrl,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	AvatarURL          string             `json:"avatarUrl,omitempty"`
	AverageRating      float64            `json:"averageRating,omitempty"`
}
