package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monash-merchant/merchant/internal/auth"
)

func writeFixtures(t *testing.T, users, customers string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.csv"), []byte(users), 0o644))
	if customers != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "customer.csv"), []byte(customers), 0o644))
	}
	return dir
}

const usersFixture = "user_id,role,email,password\n" +
	"1,customer,member@student.monash.edu,Monash1234\n" +
	"2,administrator,admin@merchant.monash.edu,12345678\n" +
	"3,customer,ghost@student.monash.edu,Spooky99\n"

const customersFixture = "user_id,first_name,last_name,date_of_birth,gender,mobile_number,address,fund,membership\n" +
	"1,Mona,Member,2001-03-04,female,0400000000,1 Example St,250.00,true\n"

func TestLoginCustomerJoinsProfile(t *testing.T) {
	dir := writeFixtures(t, usersFixture, customersFixture)
	svc := auth.NewService(nil, dir)

	user, err := svc.Login("member@student.monash.edu", "Monash1234")
	require.NoError(t, err)
	require.Equal(t, auth.RoleCustomer, user.Role)
	require.Equal(t, "1", user.ID)
	require.NotNil(t, user.Profile)
	require.Equal(t, "Mona", user.Profile.FirstName)
	require.Equal(t, "Member", user.Profile.LastName)
	require.Equal(t, "250.00", user.Profile.Fund)
	require.Equal(t, "true", user.Profile.Membership)
}

func TestLoginCustomerToleratesMissingProfile(t *testing.T) {
	dir := writeFixtures(t, usersFixture, customersFixture)
	svc := auth.NewService(nil, dir)

	user, err := svc.Login("ghost@student.monash.edu", "Spooky99")
	require.NoError(t, err)
	require.Equal(t, auth.RoleCustomer, user.Role)
	require.NotNil(t, user.Profile)
	require.Equal(t, "", user.Profile.FirstName)
	require.Equal(t, "", user.Profile.Address)
}

func TestLoginAdministrator(t *testing.T) {
	dir := writeFixtures(t, usersFixture, customersFixture)
	svc := auth.NewService(nil, dir)

	user, err := svc.Login("admin@merchant.monash.edu", "12345678")
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdministrator, user.Role)
	require.Nil(t, user.Profile)
}

func TestLoginUnknownCredentials(t *testing.T) {
	dir := writeFixtures(t, usersFixture, customersFixture)
	svc := auth.NewService(nil, dir)

	_, err := svc.Login("nobody@nowhere.test", "x")
	require.ErrorIs(t, err, auth.ErrNoSuchUser)

	// Both criteria must match exactly.
	_, err = svc.Login("member@student.monash.edu", "wrong")
	require.ErrorIs(t, err, auth.ErrNoSuchUser)
}

func TestLoginInvalidRoleSurfaces(t *testing.T) {
	users := "user_id,role,email,password\n" +
		"9,superuser,root@merchant.monash.edu,toor\n"
	dir := writeFixtures(t, users, "")
	svc := auth.NewService(nil, dir)

	_, err := svc.Login("root@merchant.monash.edu", "toor")
	require.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestLoginDuplicateRowsFirstWins(t *testing.T) {
	users := "user_id,role,email,password\n" +
		"1,customer,twin@student.monash.edu,Same1234\n" +
		"2,administrator,twin@student.monash.edu,Same1234\n"
	dir := writeFixtures(t, users, customersFixture)
	svc := auth.NewService(nil, dir)

	user, err := svc.Login("twin@student.monash.edu", "Same1234")
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)
	require.Equal(t, auth.RoleCustomer, user.Role)
}
