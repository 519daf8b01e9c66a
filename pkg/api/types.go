package api

// TrustSettings is the account-level trust relationship block.
type TrustSettings struct {
	DirectTrust   bool `json:"direct_trust"`
	ExternalTrust bool `json:"external_trust"`
	TrustAll      bool `json:"trust_all"`
}

// Account is the calling account as the platform reports it.
type Account struct {
	ID    string        `json:"id"`
	Trust TrustSettings `json:"trust"`
}

// Resource is a single resource attached to a deployment, such as an
// elasticsearch node set.
type Resource struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Region string `json:"region"`
	RefID  string `json:"refId"`
}

// Deployment is a platform deployment.
type Deployment struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Region    string     `json:"region"`
	Status    string     `json:"status"`
	Resources []Resource `json:"resources"`
}

// DeploymentListResponse wraps the deployment list.
type DeploymentListResponse struct {
	Deployments []Deployment `json:"deployments"`
}

// DeploymentCreateResponse acknowledges a deployment creation. Alias is
// omitted when the request carried none.
type DeploymentCreateResponse struct {
	Created   bool       `json:"created"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Alias     *string    `json:"alias,omitempty"`
	Resources []Resource `json:"resources"`
}

// SearchResources is the per-kind resource breakdown attached to each
// search hit. The mock always reports every kind empty.
type SearchResources struct {
	Elasticsearch []Resource `json:"elasticsearch"`
	Kibana        []Resource `json:"kibana"`
}

// SearchDeployment is a single deployment search hit.
type SearchDeployment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Resources SearchResources `json:"resources"`
	Healthy   bool            `json:"healthy"`
}

// DeploymentSearchResponse is the search result page. The count fields are
// camelCase on the wire while entity fields are snake_case; the
// inconsistency is the upstream API's.
type DeploymentSearchResponse struct {
	Deployments []SearchDeployment `json:"deployments"`
	ReturnCount int                `json:"returnCount"`
	MatchCount  int                `json:"matchCount"`
}

// Organization is a platform organization.
type Organization struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// OrganizationListResponse wraps the organization list. NextPage is always
// null; the mock never produces a real pagination cursor.
type OrganizationListResponse struct {
	Organizations []Organization `json:"organizations"`
	NextPage      *string        `json:"next_page"`
}

// APIKey is an API key as returned by the key endpoints. APIKey holds the
// secret value and is populated on creation only, never on reads.
type APIKey struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	UserID         string  `json:"user_id"`
	CreationDate   string  `json:"creation_date"`
	ExpirationDate *string `json:"expiration_date"`
	APIKey         string  `json:"api_key,omitempty"`
}

// KeyDeleteResponse acknowledges a key invalidation. Both fields are always
// true: with no backing store there is no notion of a missing key.
type KeyDeleteResponse struct {
	Found       bool `json:"found"`
	Invalidated bool `json:"invalidated"`
}
