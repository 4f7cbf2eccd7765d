//go:build integration

package dbinterface

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/go-sql-driver/mysql"
	testcontainers "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/flashcards/zhdeck/card"
	"github.com/flashcards/zhdeck/database"
)

var dbc *DatabaseConn

var woCard = card.Card{
	GUID:        "wo-guid",
	Simplified:  "我",
	Pinyin:      `<span class="tone3">wǒ</span>`,
	Definitions: "<div class=\"defs_wrapper\">\n<ol>\n<li>\nI\n</li>\n</ol>\n</div>",
	Tags:        []string{"HSK_Level_1"},
}

func createDbContainer(ctx context.Context, databaseName string) (testcontainers.Container, string, error) {
	port := "3306"

	env := map[string]string{
		"MYSQL_ROOT_PASSWORD": "secret",
		"MYSQL_DATABASE":      databaseName,
		"MYSQL_USER":          databaseName,
		"MYSQL_PASSWORD":      "secret",
	}

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mysql:8.4.4",
			ExposedPorts: []string{port},
			Env:          env,
			Name:         databaseName,
			WaitingFor:   wait.ForLog("port: 3306  MySQL Community Server - GPL"),
		},
		Started: true,
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	if err != nil {
		return nil, "", err
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return nil, "", err
	}

	return container, mappedPort.Port(), nil
}

func TestMain(m *testing.M) {
	ctx := context.Background()
	databaseName := "test-db"
	container, port, err := createDbContainer(ctx, databaseName)
	if err != nil {
		log.Fatal(err)
	}

	tableName := "notes"
	cfg := mysql.Config{
		User:                 databaseName,
		Passwd:               "secret",
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("127.0.0.1:%s", port),
		DBName:               databaseName,
		AllowNativePasswords: true,
	}
	dbc, err = Connect(ctx, cfg, tableName)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.CreateTable(ctx, dbc.DB(), tableName); err != nil {
		log.Fatal(err)
	}

	if _, err = Add(ctx, dbc, woCard); err != nil {
		log.Fatal(err)
	}

	code := m.Run()

	dbc.Close()
	container.Terminate(ctx)
	os.Exit(code)
}

func TestAddIntegration(t *testing.T) {
	ctx := context.Background()
	niCard := card.Card{GUID: "ni-guid", Simplified: "你", Pinyin: "ni3", Definitions: "you"}

	type args struct {
		cardToAdd card.Card
		wantResp  int
		cleanup   func(string)
	}
	tests := map[string]args{
		"success": {
			cardToAdd: niCard,
			wantResp:  1,
			cleanup: func(guid string) {
				if err := Delete(ctx, dbc, guid); err != nil {
					t.Fatalf("Error when doing cleanup and deleting %s", guid)
				}
			},
		},
		"adding duplicate": {
			cardToAdd: woCard,
			wantResp:  0,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Add(ctx, dbc, test.cardToAdd)
			if err != nil {
				t.Fatalf("Got error %v", err)
			}
			if len(got) != test.wantResp {
				t.Errorf("Got %v; wanted %d ids", got, test.wantResp)
			}
			if test.cleanup != nil {
				test.cleanup(test.cardToAdd.GUID)
			}
		})
	}
}

func TestFindIntegration(t *testing.T) {
	ctx := context.Background()
	got, err := Find(ctx, dbc, "我")
	if err != nil {
		t.Fatalf("Got error %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Got %d notes; wanted 1", len(got))
	}
	for _, c := range got {
		if !reflect.DeepEqual(c, woCard) {
			t.Errorf("Got %+v; wanted %+v", c, woCard)
		}
	}

	_, err = Find(ctx, dbc, "龘")
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("Got error %v; wanted ErrNotFound", err)
	}
}

func TestDeleteMissingIntegration(t *testing.T) {
	err := Delete(context.Background(), dbc, "no-such-guid")
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("Got error %v; wanted ErrNotFound", err)
	}
}
