package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/usecase/account"
	"github.com/budgetbook/backend/internal/application/usecase/auth"
	"github.com/budgetbook/backend/internal/application/usecase/budget"
	"github.com/budgetbook/backend/internal/application/usecase/category"
	"github.com/budgetbook/backend/internal/application/usecase/transaction"
	"github.com/budgetbook/backend/internal/infra/server/router"
	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetbook/backend/internal/integration/persistence"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
	"github.com/budgetbook/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	currentAccountID  uuid.UUID
	otherAccountID    uuid.UUID
	currentCategoryID uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"accounts":       &model.AccountModel{},
			"budget_periods": &model.BudgetPeriodModel{},
			"categories":     &model.CategoryModel{},
			"transactions":   &model.TransactionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Ledger setup steps
	ctx.Given(`^an account "([^"]*)" exists with balance "([^"]*)"$`, test.anAccountExistsWithBalance)
	ctx.Given(`^another account "([^"]*)" exists with balance "([^"]*)"$`, test.anotherAccountExistsWithBalance)
	ctx.Given(`^a budget period exists for "([^"]*)" with available to budget "([^"]*)"$`, test.aBudgetPeriodExistsWithPool)
	ctx.Given(`^a category "([^"]*)" exists in "([^"]*)" with assigned "([^"]*)"$`, test.aCategoryExistsWithAssigned)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the account "([^"]*)" should have balance "([^"]*)"$`, test.theAccountShouldHaveBalance)
	ctx.Then(`^the category "([^"]*)" should have spent "([^"]*)"$`, test.theCategoryShouldHaveSpent)
	ctx.Then(`^the category "([^"]*)" should have assigned "([^"]*)"$`, test.theCategoryShouldHaveAssigned)
	ctx.Then(`^the budget period "([^"]*)" should have available to budget "([^"]*)"$`, test.theBudgetPeriodShouldHavePool)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.otherAccountID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			periodRepo := persistence.NewBudgetPeriodRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			uow := persistence.NewUnitOfWork(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create account use cases
			createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
			listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(periodRepo, categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(uow)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(uow)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(uow)

			// Create budget use cases
			getMonthUseCase := budget.NewGetMonthUseCase(periodRepo, categoryRepo)
			assignMoneyUseCase := budget.NewAssignMoneyUseCase(uow)

			// Create transaction use cases
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(uow)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			accountController := controller.NewAccountController(
				createAccountUseCase,
				listAccountsUseCase,
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)

			budgetController := controller.NewBudgetController(
				getMonthUseCase,
				assignMoneyUseCase,
			)

			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter(mock.NewRedis())
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				accountController,
				categoryController,
				budgetController,
				transactionController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "budgetbook",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "budgetbook",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) anAccountExistsWithBalance(name, balance string) error {
	id, err := t.createAccount(name, balance)
	if err != nil {
		return err
	}
	t.currentAccountID = id
	return nil
}

func (t *testContext) anotherAccountExistsWithBalance(name, balance string) error {
	id, err := t.createAccount(name, balance)
	if err != nil {
		return err
	}
	t.otherAccountID = id
	return nil
}

func (t *testContext) createAccount(name, balance string) (uuid.UUID, error) {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	accountModel := &model.AccountModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Name:      name,
		Balance:   amount,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := t.db.DbConn.Create(accountModel).Error; err != nil {
		return uuid.Nil, err
	}
	return accountModel.ID, nil
}

func (t *testContext) aBudgetPeriodExistsWithPool(month, pool string) error {
	amount, err := decimal.NewFromString(pool)
	if err != nil {
		return fmt.Errorf("invalid pool %q: %w", pool, err)
	}

	periodModel := &model.BudgetPeriodModel{
		ID:                    uuid.New(),
		UserID:                t.currentUserID,
		Month:                 month,
		AvailableToBudget:     amount,
		CarryoverFromPrevious: decimal.Zero,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	return t.db.DbConn.Create(periodModel).Error
}

func (t *testContext) aCategoryExistsWithAssigned(name, month, assigned string) error {
	amount, err := decimal.NewFromString(assigned)
	if err != nil {
		return fmt.Errorf("invalid assigned %q: %w", assigned, err)
	}

	var periodModel model.BudgetPeriodModel
	err = t.db.DbConn.
		Where("user_id = ? AND month = ?", t.currentUserID, month).
		First(&periodModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		periodModel = model.BudgetPeriodModel{
			ID:                    uuid.New(),
			UserID:                t.currentUserID,
			Month:                 month,
			AvailableToBudget:     decimal.Zero,
			CarryoverFromPrevious: decimal.Zero,
			CreatedAt:             time.Now(),
			UpdatedAt:             time.Now(),
		}
		if err := t.db.DbConn.Create(&periodModel).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	categoryModel := &model.CategoryModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		PeriodID:  periodModel.ID,
		Name:      name,
		Assigned:  amount,
		Spent:     decimal.Zero,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}
	t.currentCategoryID = categoryModel.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{other_account_id}}", t.otherAccountID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Transaction writes nest the transaction in the response.
		if txn, ok := responseBody["transaction"].(map[string]any); ok {
			if idStr, ok := txn["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.lastTransactionID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theAccountShouldHaveBalance(name, expected string) error {
	var accountModel model.AccountModel
	err := t.db.DbConn.
		Where("user_id = ? AND name = ?", t.currentUserID, name).
		First(&accountModel).Error
	if err != nil {
		return fmt.Errorf("account %q not found: %w", name, err)
	}

	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected balance %q: %w", expected, err)
	}
	if !accountModel.Balance.Equal(want) {
		return fmt.Errorf("account %q balance expected %s, got %s", name, want, accountModel.Balance)
	}
	return nil
}

func (t *testContext) theCategoryShouldHaveSpent(name, expected string) error {
	var categoryModel model.CategoryModel
	err := t.db.DbConn.
		Where("user_id = ? AND name = ?", t.currentUserID, name).
		First(&categoryModel).Error
	if err != nil {
		return fmt.Errorf("category %q not found: %w", name, err)
	}

	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected spent %q: %w", expected, err)
	}
	if !categoryModel.Spent.Equal(want) {
		return fmt.Errorf("category %q spent expected %s, got %s", name, want, categoryModel.Spent)
	}
	return nil
}

func (t *testContext) theCategoryShouldHaveAssigned(name, expected string) error {
	var categoryModel model.CategoryModel
	err := t.db.DbConn.
		Where("user_id = ? AND name = ?", t.currentUserID, name).
		First(&categoryModel).Error
	if err != nil {
		return fmt.Errorf("category %q not found: %w", name, err)
	}

	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected assigned %q: %w", expected, err)
	}
	if !categoryModel.Assigned.Equal(want) {
		return fmt.Errorf("category %q assigned expected %s, got %s", name, want, categoryModel.Assigned)
	}
	return nil
}

func (t *testContext) theBudgetPeriodShouldHavePool(month, expected string) error {
	var periodModel model.BudgetPeriodModel
	err := t.db.DbConn.
		Where("user_id = ? AND month = ?", t.currentUserID, month).
		First(&periodModel).Error
	if err != nil {
		return fmt.Errorf("budget period %q not found: %w", month, err)
	}

	want, err := decimal.NewFromString(expected)
	if err != nil {
		return fmt.Errorf("invalid expected pool %q: %w", expected, err)
	}
	if !periodModel.AvailableToBudget.Equal(want) {
		return fmt.Errorf("budget period %q pool expected %s, got %s", month, want, periodModel.AvailableToBudget)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
			continue
		}

		fieldMap, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = fieldMap[currentField]
	}

	return field
}
