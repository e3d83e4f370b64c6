package routes

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sarthakcode01/hacksetu-be/app"
	"github.com/sarthakcode01/hacksetu-be/database"
	"github.com/sarthakcode01/hacksetu-be/httpx"
	"github.com/sarthakcode01/hacksetu-be/log"
	"github.com/sarthakcode01/hacksetu-be/model"
	"golang.org/x/crypto/bcrypt"
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const passwordMinLen = 6

type registration struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	OrgName  string `json:"org_name"`
	College  string `json:"college"`
	City     string `json:"city"`
}

func (reg registration) validate() (model.Role, error) {
	var errs *multierror.Error

	if len(reg.FullName) < 2 {
		errs = multierror.Append(errs, fmt.Errorf("name must be at least 2 characters long"))
	}
	if !reEmail.MatchString(reg.Email) {
		errs = multierror.Append(errs, fmt.Errorf("invalid email address"))
	}
	if len(reg.Password) < passwordMinLen {
		errs = multierror.Append(errs,
			fmt.Errorf("password must be at least %d characters long", passwordMinLen))
	}
	role, ok := model.ParseRole(reg.Role)
	if !ok {
		errs = multierror.Append(errs, fmt.Errorf("unknown role %q", reg.Role))
	}

	return role, errs.ErrorOrNil()
}

func Register(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg := registration{}
		err := render.DecodeJSON(r.Body, &reg)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		role, err := reg.validate()
		if err != nil {
			httpx.WriteDomainError(w, r, "register.validate", err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
		if err != nil {
			httpx.LogInternalError(w, "register.hash_password", err)
			return
		}

		userId := uuid.New()
		_, err = app.ExecContext(r.Context(), `
			INSERT INTO user (id, full_name, email, password_hash, role, org_name, college, city, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			userId.String(),
			reg.FullName,
			reg.Email,
			string(hash),
			role,
			reg.OrgName,
			reg.College,
			reg.City,
			time.Now(),
		)
		if err != nil {
			if database.IsUniqueViolation(err) {
				httpx.WriteDomainError(w, r, "register.insert_user", model.ErrEmailTaken)
			} else {
				httpx.LogInternalError(w, "register.insert_user", err)
			}
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"user_id": userId,
		})
	}
}

func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "login.basic_auth")
			return
		}

		body := url.Values{
			"grant_type": {"password"},
			"username":   {user},
			"password":   {pass},
		}
		r.Body = io.NopCloser(strings.NewReader(body.Encode()))
		r.Header.Set("content-type", "application/x-www-form-urlencoded")
		r.Header.Set("content-length", strconv.Itoa(len(body.Encode())))
		app.UserCredentials(w, r)
	}
}

func Refresh(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("authorization")
		match := regexp.MustCompile(`(?i)^refresh\s+(.*)`).FindStringSubmatch(auth)
		if len(match) == 0 {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "refresh.token")
			return
		}
		token := match[1]

		body := url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {token},
		}

		req, err := http.NewRequest("POST", "/", strings.NewReader(body.Encode()))
		if err != nil {
			httpx.LogStatus(w, http.StatusInternalServerError, log.DebugLevel, "refresh.new_request")
			return
		}
		req.Header.Set("content-type", "application/x-www-form-urlencoded")
		req.Header.Set("content-length", strconv.Itoa(len(body.Encode())))

		resp := httpx.NewResponseBuffer()
		app.UserCredentials(resp, req)
		resp.Flush(w)
	}
}
