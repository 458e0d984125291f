package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/accrisk/pkg/identity"
	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/risk"
	gormstore "github.com/doodlesbykumbi/accrisk/pkg/server/store/gorm"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	authToken    string
	assets       map[string]string
	lastRiskID   string
	automationID string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:     tc,
		assets: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(s.resetDatabase)

	// Background steps
	sc.Step(`^the risk server is running$`, s.theRiskServerIsRunning)
	sc.Step(`^an asset "([^"]*)" with account "([^"]*)" exists$`, s.anAssetWithAccountExists)
	sc.Step(`^I am authenticated as "([^"]*)"$`, s.iAmAuthenticatedAs)
	sc.Step(`^I am not authenticated$`, s.iAmNotAuthenticated)

	// Risk steps
	sc.Step(`^a "([^"]*)" risk for "([^"]*)" on asset "([^"]*)" exists$`, s.aRiskExists)
	sc.Step(`^(\d+) synthetic risks are seeded$`, s.syntheticRisksAreSeeded)
	sc.Step(`^a risk with stored value "([^"]*)" for "([^"]*)" on asset "([^"]*)" exists$`, s.aLegacyRiskExists)
	sc.Step(`^I list risks with query "([^"]*)"$`, s.iListRisksWithQuery)
	sc.Step(`^I confirm the risk$`, s.iConfirmTheRisk)
	sc.Step(`^I confirm the risk "([^"]*)"$`, s.iConfirmTheRiskID)
	sc.Step(`^I delete the risk$`, s.iDeleteTheRisk)
	sc.Step(`^I fetch the risk$`, s.iFetchTheRisk)
	sc.Step(`^I delete asset "([^"]*)"$`, s.iDeleteAsset)
	sc.Step(`^the risk should be confirmed in the database$`, s.theRiskShouldBeConfirmed)
	sc.Step(`^there should be (\d+) risks in the database$`, s.thereShouldBeRisks)

	// Automation steps
	sc.Step(`^a periodic check automation "([^"]*)" exists$`, s.aPeriodicCheckAutomationExists)
	sc.Step(`^I fetch the task registration of the automation$`, s.iFetchTheTaskRegistration)

	// Response steps
	sc.Step(`^I request "([^"]*)"$`, s.iRequest)
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response JSON "([^"]*)" should be "([^"]*)"$`, s.theResponseJSONShouldBe)
	sc.Step(`^the response JSON "([^"]*)" should be (\d+)$`, s.theResponseJSONShouldBeNumber)
	sc.Step(`^the response body should contain "([^"]*)"$`, s.theResponseBodyShouldContain)
}

func (s *StepsContext) resetDatabase(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
	for _, table := range []string{"account_risk", "automations", "accounts", "assets"} {
		if err := s.tc.DB.Exec("DELETE FROM " + table).Error; err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// Background steps

func (s *StepsContext) theRiskServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) anAssetWithAccountExists(assetName, username string) error {
	asset := &model.Asset{OrgModel: model.OrgModel{OrgID: s.tc.OrgID}, Name: assetName, IsActive: true}
	if err := s.tc.DB.Create(asset).Error; err != nil {
		return err
	}
	account := &model.Account{
		OrgModel: model.OrgModel{OrgID: s.tc.OrgID},
		Name:     username,
		Username: username,
		AssetID:  asset.ID,
		IsActive: true,
	}
	if err := s.tc.DB.Create(account).Error; err != nil {
		return err
	}
	s.assets[assetName] = asset.ID
	return nil
}

func (s *StepsContext) iAmAuthenticatedAs(subject string) error {
	token, err := identity.Issue(s.tc.JWTSecret, subject, time.Hour)
	if err != nil {
		return err
	}
	s.authToken = token
	return nil
}

func (s *StepsContext) iAmNotAuthenticated() error {
	s.authToken = ""
	return nil
}

// Risk steps

func (s *StepsContext) risksStore() *gormstore.RisksStore {
	return gormstore.NewRisksStore(s.tc.DB, s.tc.OrgID, 50)
}

func (s *StepsContext) assetID(name string) (string, error) {
	id, ok := s.assets[name]
	if !ok {
		return "", fmt.Errorf("unknown asset %q", name)
	}
	return id, nil
}

func (s *StepsContext) aRiskExists(kind, username, assetName string) error {
	assetID, err := s.assetID(assetName)
	if err != nil {
		return err
	}
	row, err := s.risksStore().Create(assetID, username, kind, false)
	if err != nil {
		return err
	}
	s.lastRiskID = row.ID
	return nil
}

func (s *StepsContext) syntheticRisksAreSeeded(count int) error {
	n, err := s.risksStore().GenerateSyntheticData(count, 7)
	if err != nil {
		return err
	}
	if n != count {
		return fmt.Errorf("expected %d seeded risks, got %d", count, n)
	}
	return nil
}

// aLegacyRiskExists writes a row behind the store's back, the way rows with
// retired risk values end up in the table
func (s *StepsContext) aLegacyRiskExists(value, username, assetName string) error {
	assetID, err := s.assetID(assetName)
	if err != nil {
		return err
	}
	row := &model.AccountRisk{
		OrgModel: model.OrgModel{OrgID: s.tc.OrgID},
		AssetID:  assetID,
		Username: username,
		Risk:     risk.Kind(value),
	}
	if err := s.tc.DB.Create(row).Error; err != nil {
		return err
	}
	s.lastRiskID = row.ID
	return nil
}

func (s *StepsContext) iListRisksWithQuery(query string) error {
	path := "/risks"
	if query != "" {
		path += "?" + query
	}
	return s.doRequest(http.MethodGet, path, nil)
}

func (s *StepsContext) iConfirmTheRisk() error {
	return s.iConfirmTheRiskID(s.lastRiskID)
}

func (s *StepsContext) iConfirmTheRiskID(id string) error {
	return s.doRequest(http.MethodPost, "/risks/"+id+"/confirm", nil)
}

func (s *StepsContext) iDeleteTheRisk() error {
	return s.doRequest(http.MethodDelete, "/risks/"+s.lastRiskID, nil)
}

func (s *StepsContext) iFetchTheRisk() error {
	return s.doRequest(http.MethodGet, "/risks/"+s.lastRiskID, nil)
}

func (s *StepsContext) iDeleteAsset(assetName string) error {
	assetID, err := s.assetID(assetName)
	if err != nil {
		return err
	}
	return s.tc.DB.Exec("DELETE FROM assets WHERE id = ?", assetID).Error
}

func (s *StepsContext) theRiskShouldBeConfirmed() error {
	row, err := s.risksStore().Get(s.lastRiskID)
	if err != nil {
		return err
	}
	if !row.Confirmed {
		return fmt.Errorf("risk %s is not confirmed", s.lastRiskID)
	}
	return nil
}

func (s *StepsContext) thereShouldBeRisks(expected int) error {
	var n int64
	if err := s.tc.DB.Model(&model.AccountRisk{}).Where("org_id = ?", s.tc.OrgID).Count(&n).Error; err != nil {
		return err
	}
	if n != int64(expected) {
		return fmt.Errorf("expected %d risks, found %d", expected, n)
	}
	return nil
}

// Automation steps

func (s *StepsContext) aPeriodicCheckAutomationExists(name string) error {
	a := model.NewAccountCheckAutomation(s.tc.OrgID, name)
	a.IsPeriodic = true
	a.Interval = 24
	if err := gormstore.NewAutomationsStore(s.tc.DB, s.tc.OrgID).SaveCheckAutomation(a); err != nil {
		return err
	}
	s.automationID = a.ID
	return nil
}

func (s *StepsContext) iFetchTheTaskRegistration() error {
	return s.doRequest(http.MethodGet, "/automations/check/"+s.automationID+"/task", nil)
}

// Response steps

func (s *StepsContext) iRequest(path string) error {
	return s.doRequest(http.MethodGet, path, nil)
}

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseJSONShouldBe(path, expected string) error {
	value, err := s.jsonValue(path)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(value); got != s.expand(expected) {
		return fmt.Errorf("expected %s to be %q, got %q", path, s.expand(expected), got)
	}
	return nil
}

func (s *StepsContext) theResponseJSONShouldBeNumber(path string, expected int) error {
	value, err := s.jsonValue(path)
	if err != nil {
		return err
	}
	n, ok := value.(float64)
	if !ok || int(n) != expected {
		return fmt.Errorf("expected %s to be %d, got %v", path, expected, value)
	}
	return nil
}

func (s *StepsContext) theResponseBodyShouldContain(expected string) error {
	if !strings.Contains(string(s.responseBody), s.expand(expected)) {
		return fmt.Errorf("expected response body to contain %q, got %s", s.expand(expected), string(s.responseBody))
	}
	return nil
}

// expand substitutes {risk_id}, {automation_id} and {automation_prefix}
func (s *StepsContext) expand(v string) string {
	prefix := s.automationID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return strings.NewReplacer(
		"{risk_id}", s.lastRiskID,
		"{automation_id}", s.automationID,
		"{automation_prefix}", prefix,
	).Replace(v)
}

// jsonValue walks a dotted path such as "results.0.risk_display"
func (s *StepsContext) jsonValue(path string) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal(s.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	current := doc
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			v, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("key %q not found in %s", part, path)
			}
			current = v
		case []interface{}:
			var idx int
			if _, err := fmt.Sscanf(part, "%d", &idx); err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %s", part, path)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("cannot descend into %s", path)
		}
	}
	return current, nil
}

func (s *StepsContext) doRequest(method, path string, body []byte) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}
