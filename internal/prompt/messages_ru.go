package prompt

var messagesRU = map[string]string{
	"list.sep": ", ",
	"none":     "нет",
	"days_ago": "%d дн. назад",

	"status.header":       "[OOC: 🩺 РЕПРОДУКТИВНАЯ СИСТЕМА: АКТИВНА",
	"status.footer":       "]",
	"status.story_date":   "📆 Дата в истории: %s",
	"status.contra.none":  "КОНТРАЦЕПЦИЯ: ❌ НЕ ИСПОЛЬЗУЕТСЯ. Персонаж НЕ предохраняется; при вагинальном сексе есть риск беременности.",
	"status.contra":       "КОНТРАЦЕПЦИЯ: 🛡️ %s (лучшая защита %v%%). Описывай её использование в сцене. Защита может подвести; если это случилось, опиши это явно.",
	"status.cycle":        "🩸 ЦИКЛ: день %d из %d | Фаза: %s | Фертильность: %s",
	"status.period":       "🔴 Месячные: день %d из %d, выделения: %s",
	"status.pms":          "😣 Идёт ПМС",
	"status.symptoms":     "Симптомы: %s",
	"status.cycle_rules":  "В начале каждого ответа показывай строку цикла; учитывай фазу в настроении и ощущениях персонажа. После последнего дня цикл начинается заново с дня 1.",
	"status.tag_rules":    "🎲 ПРОВЕРКА ЗАЧАТИЯ: после вагинального секса с эякуляцией внутрь добавь в конце ответа [CYCLE_DAY:<день>][CONCEPTION_CHECK]. НЕ добавляй тег при оральном, анальном, прерванном акте или если контрацепция сработала.",
	"status.sti_rules":    "🧫 После секса с названным партнёром без защиты или с презервативом добавь [STI_CHECK:<партнёр>] или [STI_CHECK:<партнёр>:condom].",
	"status.preg.header":  "🤰 БЕРЕМЕННОСТЬ: АКТИВНА",
	"status.preg.week":    "Неделя %v | Триместр %d",
	"status.preg.stage":   "Стадия: %s",
	"status.preg.visible": "Живот: %s",
	"status.preg.fetuses": "Многоплодная: %s",
	"status.preg.sexes":   "Пол плодов (персонаж не знает): %s",
	"status.preg.health":  "Здоровье: %s",
	"status.preg.compl":   "Осложнений было: %d",
	"status.preg.due":     "Предполагаемая дата родов: %s",
	"status.preg.advice":  "Подсказка: %s",
	"status.preg.secret":  "Персонаж НЕ ЗНАЕТ о беременности, пока нет явных симптомов или теста!",
	"status.preg.rules":   "В начале каждого ответа показывай строку беременности. Осложнения описывай реалистично.",
	"status.infections":   "🧫 Инфекции: %s",
	"status.stats":        "📊 Проверок: %d | Зачатий: %d",

	"fertility.low":    "низкая",
	"fertility.medium": "средняя",
	"fertility.high":   "ВЫСОКАЯ",

	"multiples.2": "двойня",
	"multiples.3": "тройня",

	"result.header": "[OOC:",
	"result.footer": "]",

	"conception.title":     "🎲 ПРОВЕРКА ЗАЧАТИЯ",
	"conception.day":       "📅 День цикла: %d (%s)",
	"conception.methods":   "🛡️ Контрацепция: %s",
	"conception.failed":    "⚠️ КОНТРАЦЕПЦИЯ ПОДВЕЛА!",
	"conception.chance":    "📊 Шанс зачатия: %v%%",
	"conception.roll":      "🎲 Бросок: %d",
	"conception.success":   "✅ ЗАЧАТИЕ ПРОИЗОШЛО!",
	"conception.fail":      "❌ Зачатие не произошло",
	"conception.multiples": "👶 Плодов: %d (%s!)",
	"conception.secret":    "Беременность началась! Персонаж пока НЕ ЗНАЕТ об этом.",
	"conception.skipped":   "🤰 Уже беременна: проверка зачатия не проводилась.",

	"complication.title":        "⚠️ ПРОВЕРКА ОСЛОЖНЕНИЙ | Триместр %d",
	"complication.roll":         "🎲 Бросок: %d (шанс %d%%)",
	"complication.normal":       "🟢 НОРМА: осложнений нет",
	"complication.found":        "%s: %s",
	"complication.instruct":     "Опиши симптомы в сцене реалистично и драматично.",
	"complication.not_pregnant": "Не беременна: проверка осложнений не нужна.",
	"complication.too_soon":     "Осложнения на этой неделе уже проверялись. Следующая проверка: %s",

	"sti.title":         "🧫 ПРОВЕРКА ИППП | Партнёр: %s",
	"sti.risk":          "Риск партнёра: %s",
	"sti.condom":        "🎈 Использовался презерватив",
	"sti.clean":         "Партнёр ничем не болеет.",
	"sti.attempt":       "%s: шанс %v%%, бросок %d → %s",
	"sti.already":       "%s: уже есть",
	"sti.acquired":      "⚠️ ЗАРАЖЕНИЕ: %s, инкубация %d дн., %s, %s",
	"sti.none_acquired": "✅ Заражения не произошло",
	"sti.yes":           "передалось",
	"sti.no":            "не передалось",
	"sti.symptomatic":   "с симптомами",
	"sti.asymptomatic":  "бессимптомно",
	"sti.instruct":      "Персонаж пока не знает. Симптомы, если будут, появятся после инкубационного периода.",

	"birth.done":     "👶 Роды на %v неделе: %d %s. Отслеживание беременности сброшено.",
	"birth.child":    "ребёнок",
	"birth.children": "ребёнка",
	"reminder.still": "Напоминание: персонаж БЕРЕМЕННА (неделя %v). Отрицательный тест или отрицание не прерывают беременность.",
	"reset.done":     "Беременность сброшена.",

	"period.active": "🔴 Месячные: день %d из %d, выделения: %s",
	"period.pms":    "😣 ПМС: месячные через %d дн.",
	"period.none":   "Месячных нет. Следующие через %d дн.",
	"period.last":   "Последние месячные начались %s",

	"cycle.set":      "День цикла установлен: %d.",
	"cycle.advanced": "Цикл продвинут на %d дн., сейчас день %d.",
	"cycle.paused":   "Во время беременности цикл приостановлен.",

	"pregnancy.none":      "Не беременна.",
	"pregnancy.elapsed":   "Дней с зачатия: %d",
	"pregnancy.conceived": "Зачатие: %s (%s)",

	"method.on":  "%s: вкл.",
	"method.off": "%s: выкл.",

	"set.week":         "Неделя беременности установлена: %d.",
	"set.fetuses":      "Количество плодов установлено: %d.",
	"set.conceived":    "Дата зачатия установлена: %s.",
	"set.started":      "Беременность внесена по сюжету.",
	"set.not_pregnant": "Не беременна: укажите неделю или дату зачатия.",

	"notify.conceived":     "Зачатие произошло!",
	"notify.not_conceived": "Зачатие не произошло.",
	"notify.complication":  "Осложнение беременности: %s",
	"notify.sti":           "Заражение: %s",
	"notify.tracked":       "Беременность по сюжету: %d-я неделя.",
	"notify.birth":         "Малыш родился!",

	"phase.menstrual":  "менструация",
	"phase.follicular": "фолликулярная",
	"phase.ovulatory":  "ОВУЛЯЦИЯ",
	"phase.luteal":     "лютеиновая",

	"intensity.light":  "скудные",
	"intensity.normal": "умеренные",
	"intensity.heavy":  "обильные",

	"method.condom":     "презерватив",
	"method.pill":       "таблетки",
	"method.iud":        "спираль (ВМС)",
	"method.implant":    "имплант",
	"method.withdrawal": "прерванный акт",

	"health.normal":   "норма",
	"health.warning":  "⚠️ требует внимания",
	"health.critical": "🔴 критическое",

	"severity.mild":     "🟠 УМЕРЕННОЕ",
	"severity.serious":  "🟡 СЕРЬЁЗНОЕ",
	"severity.critical": "🔴 КРИТИЧЕСКОЕ",

	"sex.M": "мальчик",
	"sex.F": "девочка",

	"risk.unknown": "неизвестен",
	"risk.safe":    "безопасный",
	"risk.low":     "низкий",
	"risk.medium":  "средний",
	"risk.high":    "высокий",

	"treatment.curable":    "излечимо",
	"treatment.manageable": "не излечимо, но контролируется",
	"treatment.clearable":  "может пройти само",

	"sti.kind.chlamydia":      "хламидиоз",
	"sti.kind.gonorrhea":      "гонорея",
	"sti.kind.trichomoniasis": "трихомониаз",
	"sti.kind.syphilis":       "сифилис",
	"sti.kind.herpes":         "герпес",
	"sti.kind.hpv":            "ВПЧ",
	"sti.kind.hepatitis_b":    "гепатит B",
	"sti.kind.hiv":            "ВИЧ",

	"stage.implantation":     "имплантация",
	"stage.embryo":           "эмбрион",
	"stage.early_fetus":      "ранний плод",
	"stage.second_trimester": "начало второго триместра",
	"stage.quickening":       "первые шевеления",
	"stage.active_movement":  "активные шевеления",
	"stage.third_trimester":  "третий триместр",
	"stage.full_term":        "доношенная беременность",
	"stage.overdue":          "переношенная беременность",

	"visibility.not_visible":    "не видно",
	"visibility.barely_visible": "едва заметно",
	"visibility.noticeable":     "заметно",
	"visibility.obvious":        "очевидно",

	"advice.advice_unaware":        "симптомов нет, персонаж НЕ ЗНАЕТ.",
	"advice.advice_suspect":        "задержка и тошнота; можно заподозрить.",
	"advice.advice_first_checkup":  "пора на первый осмотр и УЗИ.",
	"advice.advice_energy_returns": "токсикоз уходит, возвращаются силы.",
	"advice.advice_anatomy_scan":   "на УЗИ виден пол.",
	"advice.advice_glucose_test":   "глюкозотолерантный тест; отёки и боли в спине.",
	"advice.advice_birth_plan":     "подготовка к родам, тренировочные схватки.",
	"advice.advice_labor_signs":    "живот опустился, предвестники родов.",
	"advice.advice_induction":      "переношенная, нужна стимуляция.",

	"complication.miscarriage_threat":       "угроза выкидыша",
	"complication.ectopic_suspicion":        "подозрение на внематочную",
	"complication.first_trimester_bleeding": "кровотечение",
	"complication.subchorionic_hematoma":    "ретрохориальная гематома",
	"complication.hyperemesis":              "сильный токсикоз",
	"complication.anemia":                   "анемия",
	"complication.cervical_insufficiency":   "истмико-цервикальная недостаточность",
	"complication.placental_abruption":      "отслойка плаценты",
	"complication.gestational_diabetes":     "гестационный диабет",
	"complication.preeclampsia_signs":       "признаки преэклампсии",
	"complication.uterine_hypertonus":       "тонус матки",
	"complication.preterm_labor":            "преждевременные роды",
	"complication.preeclampsia":             "преэклампсия",
	"complication.placenta_previa_bleeding": "кровотечение при предлежании плаценты",
	"complication.heavy_edema":              "сильные отёки",
	"complication.severe_back_pain":         "сильные боли в спине",

	"symptom.cramps":                 "спазмы",
	"symptom.fatigue":                "усталость",
	"symptom.lower_back_pain":        "боль в пояснице",
	"symptom.bloating":               "вздутие",
	"symptom.strong_cramps":          "сильные спазмы",
	"symptom.headache":               "головная боль",
	"symptom.nausea":                 "тошнота",
	"symptom.dizziness":              "головокружение",
	"symptom.mild_cramps":            "лёгкие спазмы",
	"symptom.tiredness":              "утомлённость",
	"symptom.tender_breasts":         "чувствительная грудь",
	"symptom.irritability":           "раздражительность",
	"symptom.mood_swings":            "перепады настроения",
	"symptom.food_cravings":          "тяга к еде",
	"symptom.acne":                   "прыщи",
	"symptom.anxiety":                "тревожность",
	"symptom.tearfulness":            "плаксивость",
	"symptom.rising_energy":          "прилив энергии",
	"symptom.better_mood":            "хорошее настроение",
	"symptom.clear_skin":             "чистая кожа",
	"symptom.high_libido":            "высокое либидо",
	"symptom.mild_pelvic_twinge":     "лёгкое покалывание внизу живота",
	"symptom.heightened_senses":      "обострённые чувства",
	"symptom.confidence":             "уверенность",
	"symptom.calm":                   "спокойствие",
	"symptom.slower_energy":          "спад энергии",
	"symptom.appetite_increase":      "повышенный аппетит",
	"symptom.none_noticeable":        "ничего заметного",
	"symptom.light_spotting":         "лёгкие мажущие выделения",
	"symptom.mild_cramping":          "лёгкие тянущие боли",
	"symptom.breast_tenderness":      "болезненность груди",
	"symptom.missed_period":          "задержка",
	"symptom.morning_sickness":       "утренняя тошнота",
	"symptom.frequent_urination":     "частое мочеиспускание",
	"symptom.food_aversions":         "отвращение к еде",
	"symptom.heartburn":              "изжога",
	"symptom.headaches":              "головные боли",
	"symptom.nausea_fading":          "тошнота проходит",
	"symptom.energy_returning":       "возвращаются силы",
	"symptom.growing_belly":          "растущий живот",
	"symptom.round_ligament_pain":    "боли в связках",
	"symptom.first_flutters":         "первые трепетания",
	"symptom.fetal_movement":         "шевеления",
	"symptom.back_pain":              "боли в спине",
	"symptom.nasal_congestion":       "заложенность носа",
	"symptom.increased_appetite":     "усиленный аппетит",
	"symptom.skin_changes":           "изменения кожи",
	"symptom.strong_kicks":           "сильные толчки",
	"symptom.swollen_ankles":         "отёки лодыжек",
	"symptom.stretch_marks":          "растяжки",
	"symptom.leg_cramps":             "судороги в ногах",
	"symptom.shortness_of_breath":    "одышка",
	"symptom.braxton_hicks":          "тренировочные схватки",
	"symptom.insomnia":               "бессонница",
	"symptom.pelvic_pressure":        "давление внизу живота",
	"symptom.lightening":             "опущение живота",
	"symptom.nesting_instinct":       "инстинкт гнездования",
	"symptom.mucus_plug":             "отхождение слизистой пробки",
	"symptom.exhaustion":             "изнеможение",
	"symptom.irregular_contractions": "нерегулярные схватки",
}
