package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cloudstub/cloudstub/internal/id"
	"github.com/cloudstub/cloudstub/pkg/httputil"
)

// Error messages returned to clients.
const (
	MsgInvalidJSON   = "Invalid JSON payload"
	MsgNameRequired  = "Deployment name is required"
	MsgKeyIDRequired = "API Key ID is required"
)

// Fixed values baked into the canned responses. The mock has no backing
// store; every call to a read endpoint gets the same payload.
const (
	accountID       = "acc_b94f1c2a"
	keyUserID       = "1000"
	keyNameDefault  = "Unnamed Key"
	keyNameStub     = "integration-key"
	keyCreationStub = "2024-01-01T00:00:00Z"
	secretPrefix    = "sk_"
)

// deploymentResource is the single synthetic resource attached to every
// created deployment.
var deploymentResource = Resource{
	ID:     "res_2f6a9d41",
	Kind:   "elasticsearch",
	Region: "us-east-1",
	RefID:  "main-elasticsearch",
}

// handleGetAccount handles GET /api/v1/account.
func (a *API) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, Account{
		ID: accountID,
		Trust: TrustSettings{
			DirectTrust:   true,
			ExternalTrust: false,
			TrustAll:      false,
		},
	})
}

// handleListDeployments handles GET /api/v1/deployments. No filtering and
// no pagination; the list is the same two deployments on every call.
func (a *API) handleListDeployments(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, DeploymentListResponse{
		Deployments: []Deployment{
			{
				ID:        "dep_logging_123",
				Name:      "logging",
				Region:    "us-east-1",
				Status:    "running",
				Resources: []Resource{},
			},
			{
				ID:        "dep_metrics_123",
				Name:      "metrics",
				Region:    "eu-west-1",
				Status:    "stopped",
				Resources: []Resource{},
			},
		},
	})
}

// handleCreateDeployment handles POST /api/v1/deployments.
//
// Validation short-circuits on the first failure, before any synthetic data
// is built. The deployment id is derived from the lowercased name rather
// than generated randomly, so a client can predict it from its own input.
func (a *API) handleCreateDeployment(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteBadRequest(w, MsgInvalidJSON)
		return
	}

	raw, present := payload["name"]
	if !present || raw == nil {
		httputil.WriteBadRequest(w, MsgNameRequired)
		return
	}
	name := stringify(raw)
	if name == "" {
		httputil.WriteBadRequest(w, MsgNameRequired)
		return
	}

	depID := id.DeploymentID(name)
	a.log.Debug("created mock deployment", "id", depID)

	httputil.WriteOK(w, DeploymentCreateResponse{
		Created:   true,
		ID:        depID,
		Name:      name,
		Alias:     fieldSet(payload).str("alias").ptr(),
		Resources: []Resource{deploymentResource},
	})
}

// handleSearchDeployments handles POST /api/v1/deployments/_search.
//
// The body must be valid JSON but its contents are never evaluated: there
// is no data set to run a query against, so every search reports the same
// two hits.
func (a *API) handleSearchDeployments(w http.ResponseWriter, r *http.Request) {
	var payload any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteBadRequest(w, MsgInvalidJSON)
		return
	}

	hits := []SearchDeployment{
		{ID: "dep_logging_123", Name: "logging", Resources: emptySearchResources(), Healthy: false},
		{ID: "dep_metrics_123", Name: "metrics", Resources: emptySearchResources(), Healthy: false},
	}

	httputil.WriteOK(w, DeploymentSearchResponse{
		Deployments: hits,
		ReturnCount: len(hits),
		MatchCount:  len(hits),
	})
}

// handleListOrganizations handles GET /api/v1/organizations.
func (a *API) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, OrganizationListResponse{
		Organizations: []Organization{
			{
				ID:        "org_5d2e8c19",
				Name:      "Acme Corp",
				Type:      "standard",
				CreatedAt: "2023-06-15T09:30:00Z",
				UpdatedAt: "2024-02-01T12:00:00Z",
			},
			{
				ID:        "org_a13b7f05",
				Name:      "Globex",
				Type:      "enterprise",
				CreatedAt: "2022-11-03T08:15:00Z",
				UpdatedAt: "2024-01-20T16:45:00Z",
			},
		},
	})
}

// handleCreateKey handles POST /api/v1/users/auth/keys.
//
// Every field is optional and wrongly typed fields count as absent; the
// handler never rejects a payload that parses. The secret is generated
// fresh and returned exactly once.
func (a *API) handleCreateKey(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeOptionalFields(r)
	if err != nil {
		httputil.WriteBadRequest(w, MsgInvalidJSON)
		return
	}

	key := APIKey{
		ID:             a.token("key"),
		Name:           fields.str("name").or(keyNameDefault),
		Description:    fields.str("description").ptr(),
		UserID:         keyUserID,
		CreationDate:   id.Timestamp(a.now()),
		ExpirationDate: fields.str("expiration_date").ptr(),
		APIKey:         a.secret(secretPrefix),
	}
	a.log.Debug("issued mock api key", "id", key.ID)

	httputil.WriteOK(w, key)
}

// handleGetKey handles GET /api/v1/users/auth/keys/{keyId}.
//
// There is no store to consult, so any identifier reads back as an existing
// key; only the id field reflects the request. The secret is never included
// on reads, and an empty identifier is accepted.
func (a *API) handleGetKey(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, APIKey{
		ID:           r.PathValue("keyId"),
		Name:         keyNameStub,
		UserID:       keyUserID,
		CreationDate: keyCreationStub,
	})
}

// handleDeleteKey handles DELETE /api/v1/users/auth/keys/{keyId}. Any
// non-empty identifier deletes successfully.
func (a *API) handleDeleteKey(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("keyId") == "" {
		httputil.WriteBadRequest(w, MsgKeyIDRequired)
		return
	}

	httputil.WriteOK(w, KeyDeleteResponse{Found: true, Invalidated: true})
}

// stringify renders a decoded JSON value as the upstream fixture does:
// strings pass through, anything else uses its default formatting.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func emptySearchResources() SearchResources {
	return SearchResources{
		Elasticsearch: []Resource{},
		Kibana:        []Resource{},
	}
}
